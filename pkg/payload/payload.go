package payload

// Payload is a read-only snapshot of every sheet value.
type Payload struct {
	SheetType   string      `json:"sheetType"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Layout      string      `json:"layout"`
	Application Application `json:"application"`
	Process     Process     `json:"process"`
}

// Application groups the equipment identification fields.
type Application struct {
	EquipmentID        string `json:"equipmentId"`
	EquipmentType      string `json:"equipmentType"`
	EquipmentReference string `json:"equipmentReference"`
	Department         string `json:"department"`
	PipingDiagram      string `json:"pipingDiagram"`
	TankID             string `json:"tankId"`
}

// Process groups the process conditions.
type Process struct {
	Product          string         `json:"product"`
	ChemicalMakeup   ChemicalMakeup `json:"chemicalMakeup"`
	SolidsByVolume   Range          `json:"solidsByVolume"`
	SolidsByWeight   Range          `json:"solidsByWeight"`
	DynamicViscosity Range          `json:"dynamicViscosity"`
	SpecificGravity  Range          `json:"specificGravity"`
}

// ChemicalMakeup describes the product composition.
type ChemicalMakeup struct {
	Constituents  string `json:"constituents"`
	Concentration string `json:"concentration"`
}

// Range is a min/max/normal triple kept as typed text.
type Range struct {
	Min    string `json:"min"`
	Max    string `json:"max"`
	Normal string `json:"normal"`
}

// Values returns the payload as nested maps keyed by the JSON field names.
func (p Payload) Values() map[string]any {
	rng := func(r Range) map[string]any {
		return map[string]any{"min": r.Min, "max": r.Max, "normal": r.Normal}
	}
	return map[string]any{
		"sheetType": p.SheetType,
		"company":   p.Company,
		"location":  p.Location,
		"layout":    p.Layout,
		"application": map[string]any{
			"equipmentId":        p.Application.EquipmentID,
			"equipmentType":      p.Application.EquipmentType,
			"equipmentReference": p.Application.EquipmentReference,
			"department":         p.Application.Department,
			"pipingDiagram":      p.Application.PipingDiagram,
			"tankId":             p.Application.TankID,
		},
		"process": map[string]any{
			"product": p.Process.Product,
			"chemicalMakeup": map[string]any{
				"constituents":  p.Process.ChemicalMakeup.Constituents,
				"concentration": p.Process.ChemicalMakeup.Concentration,
			},
			"solidsByVolume":   rng(p.Process.SolidsByVolume),
			"solidsByWeight":   rng(p.Process.SolidsByWeight),
			"dynamicViscosity": rng(p.Process.DynamicViscosity),
			"specificGravity":  rng(p.Process.SpecificGravity),
		},
	}
}
