package unit

import "github.com/c360studio/semlit/constraint"

// Family is the base identifier shared by all unit tags.
const Family = "unit"

// ID returns the identifier of the unit tag for a parameter:
// ID("celsius") == "unit<celsius>".
func ID(param string) string {
	return constraint.ParamID(Family, param)
}

// tagged accepts every value; a unit tag is identity, not a check.
func tagged(any) bool { return true }

// Register registers a unit tag for each parameter. Registering a unit
// twice fails like any duplicate registration; units used by several
// concepts should be registered once during initialization.
func Register(reg *constraint.Registry, params ...string) error {
	if reg == nil {
		reg = constraint.Default()
	}
	for _, param := range params {
		err := reg.Register(ID(param), tagged,
			constraint.WithDescription("unit tag: value denominated in "+param),
			constraint.WithExclusiveFamily())
		if err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is Register for init-time setup; it panics on error.
func MustRegister(reg *constraint.Registry, params ...string) {
	if err := Register(reg, params...); err != nil {
		panic(err)
	}
}
