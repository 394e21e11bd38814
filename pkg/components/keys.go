package components

import (
	"github.com/razvanlitianu/stylekit/pkg/styling"
)

// Ambient flags read by components at render time. Both default to false, so
// an empty environment renders without badges.
var (
	KeyVerified = styling.NewKey("profile_verified", false)
	KeyPremium  = styling.NewKey("profile_premium", false)
)

// Verified shadows the verified flag for the rest of the chain. Enabling is
// the default argument.
func Verified(on ...bool) styling.Modifier {
	return styling.SetEnv(KeyVerified, flagValue(on))
}

// Premium shadows the premium flag for the rest of the chain. Enabling is the
// default argument.
func Premium(on ...bool) styling.Modifier {
	return styling.SetEnv(KeyPremium, flagValue(on))
}

func flagValue(on []bool) bool {
	if len(on) == 0 {
		return true
	}
	return on[0]
}
