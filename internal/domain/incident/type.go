package incident

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Type string

const (
	TypeFire       Type = "Fire"
	TypeElectrical Type = "Electrical"
	TypeInjury     Type = "Injury"
	TypeSpill      Type = "Spill"
	TypeOther      Type = "Other"
)

func (Type) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(TypeFire),
			string(TypeElectrical),
			string(TypeInjury),
			string(TypeSpill),
			string(TypeOther),
		},
		Description: "Incident category",
		Examples:    []any{TypeFire},
	}
}

func (t Type) Validate() error {
	switch t {
	case TypeFire, TypeElectrical, TypeInjury, TypeSpill, TypeOther:
		return nil
	}
	return fmt.Errorf("unknown incident type: %s", t)
}

func (t Type) String() string {
	return string(t)
}

// Impact is the severity classification of a record. Empty means the
// reporter did not assign one.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

func (Impact) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(ImpactHigh),
			string(ImpactMedium),
			string(ImpactLow),
			"",
		},
		Description: "Severity classification, optional",
		Examples:    []any{ImpactHigh},
	}
}

func (i Impact) Validate() error {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow, "":
		return nil
	}
	return fmt.Errorf("unknown impact level: %s", i)
}

func (i Impact) String() string {
	return string(i)
}
