package payload

// EquipmentTypeKey is the input key the builder reads the equipment type from.
// The default sheet declares equipment type as a dropdown named
// "equipmentType", so with this key the payload value is always empty. The
// mapping is kept until the sheet owner confirms which one is intended; use
// WithEquipmentTypeKey to change it.
const EquipmentTypeKey = "equipmentTypeInput"

// Source exposes the current values of a sheet by name. Both lookups report
// false for names the sheet does not declare.
type Source interface {
	DropdownValue(name string) (string, bool)
	InputValue(name string) (string, bool)
}

// Option configures a Builder.
type Option func(*Builder)

// WithEquipmentTypeKey overrides the input key used for
// application.equipmentType.
func WithEquipmentTypeKey(key string) Option {
	return func(b *Builder) {
		if key != "" {
			b.equipmentTypeKey = key
		}
	}
}

// Builder reads a Source into a Payload. It never validates or mutates.
type Builder struct {
	equipmentTypeKey string
}

// NewBuilder constructs a builder with the default field mapping.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{equipmentTypeKey: EquipmentTypeKey}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build snapshots src. Missing fields read as empty strings.
func (b *Builder) Build(src Source) Payload {
	if b == nil {
		b = NewBuilder()
	}
	// Plain lookups resolve any element by name, dropdown hidden values
	// included; dropdown lookups only see dropdowns.
	val := func(name string) string {
		if src == nil {
			return ""
		}
		if v, ok := src.InputValue(name); ok {
			return v
		}
		v, _ := src.DropdownValue(name)
		return v
	}
	hidden := func(name string) string {
		if src == nil {
			return ""
		}
		v, _ := src.DropdownValue(name)
		return v
	}
	triple := func(prefix string) Range {
		return Range{
			Min:    val(prefix + "Min"),
			Max:    val(prefix + "Max"),
			Normal: val(prefix + "Normal"),
		}
	}

	return Payload{
		SheetType: hidden("sheetType"),
		Company:   hidden("company"),
		Location:  hidden("location"),
		Layout:    hidden("layout"),
		Application: Application{
			EquipmentID:        val("equipmentId"),
			EquipmentType:      val(b.equipmentTypeKey),
			EquipmentReference: val("equipmentReference"),
			Department:         val("department"),
			PipingDiagram:      val("pipingDiagram"),
			TankID:             val("tankId"),
		},
		Process: Process{
			Product: val("product"),
			ChemicalMakeup: ChemicalMakeup{
				Constituents:  val("constituents"),
				Concentration: val("concentration"),
			},
			SolidsByVolume:   triple("solidsVolume"),
			SolidsByWeight:   triple("solidsWeight"),
			DynamicViscosity: triple("viscosity"),
			SpecificGravity:  triple("sg"),
		},
	}
}
