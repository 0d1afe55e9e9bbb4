package scoring

import "github.com/rmbsgrade/rmbsgrade/pkg/mortgage"

// PropertyTypeStrategy adds risk for condominium collateral.
type PropertyTypeStrategy struct{}

func (PropertyTypeStrategy) Key() string  { return "property_type" }
func (PropertyTypeStrategy) Name() string { return "Property type" }

func (PropertyTypeStrategy) Score(m mortgage.Mortgage) (int, error) {
	if m.PropertyType == mortgage.PropertyTypeCondo {
		return 1, nil
	}
	return 0, nil
}
