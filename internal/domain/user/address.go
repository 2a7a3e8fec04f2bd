package user

import "fmt"

// Address is the billing address value object. All fields are plain
// strings; presence is the only validation applied.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string
}

// NewAddress creates a billing address. Every field must be present.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	fields := map[string]string{
		"street":   street,
		"city":     city,
		"state":    state,
		"zip_code": zipCode,
		"country":  country,
	}
	for name, value := range fields {
		if value == "" {
			return Address{}, fmt.Errorf("address %s is required", name)
		}
	}

	return Address{
		street:  street,
		city:    city,
		state:   state,
		zipCode: zipCode,
		country: country,
	}, nil
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Country() string { return a.country }

// Equals reports structural equality across all address fields.
func (a Address) Equals(other Address) bool {
	return a == other
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.state, a.zipCode, a.country)
}
