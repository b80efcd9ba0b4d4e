package preferences

import (
	"github.com/shopspring/decimal"

	"companion/internal/preferences/models"
)

// Value is the closed set of types a preferences field can hold.
type Value interface {
	bool | decimal.Decimal | models.InsulinCurve
}

// Key is a typed reference to one member of models.Preferences.
// Keys are only constructed in this package, one per settable member, so a
// Key always points at a real member and never needs runtime checking.
type Key[T Value] struct {
	name string
	ref  func(*models.Preferences) *T
}

func newKey[T Value](name string, ref func(*models.Preferences) *T) Key[T] {
	return Key[T]{name: name, ref: ref}
}

// Name is the persisted member name (the preferences document key).
func (k Key[T]) Name() string {
	return k.name
}

// Get reads the member from p.
func (k Key[T]) Get(p *models.Preferences) T {
	return *k.ref(p)
}

// Set writes v into the member of p.
func (k Key[T]) Set(p *models.Preferences, v T) {
	*k.ref(p) = v
}

// Ref returns a pointer to k, for optional bound references in DecimalKind.
func (k Key[T]) Ref() *Key[T] {
	return &k
}

type (
	BoolKey    = Key[bool]
	DecimalKey = Key[decimal.Decimal]
	CurveKey   = Key[models.InsulinCurve]
)

// Editable members.
var (
	MaxIOB                       = newKey("max_iob", func(p *models.Preferences) *decimal.Decimal { return &p.MaxIOB })
	MaxDailySafetyMultiplier     = newKey("max_daily_safety_multiplier", func(p *models.Preferences) *decimal.Decimal { return &p.MaxDailySafetyMultiplier })
	CurrentBasalSafetyMultiplier = newKey("current_basal_safety_multiplier", func(p *models.Preferences) *decimal.Decimal { return &p.CurrentBasalSafetyMultiplier })
	AutosensMax                  = newKey("autosens_max", func(p *models.Preferences) *decimal.Decimal { return &p.AutosensMax })
	AutosensMin                  = newKey("autosens_min", func(p *models.Preferences) *decimal.Decimal { return &p.AutosensMin })
	RewindResetsAutosens         = newKey("rewind_resets_autosens", func(p *models.Preferences) *bool { return &p.RewindResetsAutosens })

	HighTemptargetRaisesSensitivity = newKey("high_temptarget_raises_sensitivity", func(p *models.Preferences) *bool { return &p.HighTemptargetRaisesSensitivity })
	LowTemptargetLowersSensitivity  = newKey("low_temptarget_lowers_sensitivity", func(p *models.Preferences) *bool { return &p.LowTemptargetLowersSensitivity })
	SensitivityRaisesTarget         = newKey("sensitivity_raises_target", func(p *models.Preferences) *bool { return &p.SensitivityRaisesTarget })
	ResistanceLowersTarget          = newKey("resistance_lowers_target", func(p *models.Preferences) *bool { return &p.ResistanceLowersTarget })
	ExerciseMode                    = newKey("exercise_mode", func(p *models.Preferences) *bool { return &p.ExerciseMode })
	HalfBasalExerciseTarget         = newKey("half_basal_exercise_target", func(p *models.Preferences) *decimal.Decimal { return &p.HalfBasalExerciseTarget })

	EnableSMBAlways       = newKey("enableSMB_always", func(p *models.Preferences) *bool { return &p.EnableSMBAlways })
	EnableSMBWithCOB      = newKey("enableSMB_with_COB", func(p *models.Preferences) *bool { return &p.EnableSMBWithCOB })
	EnableUAM             = newKey("enableUAM", func(p *models.Preferences) *bool { return &p.EnableUAM })
	MaxSMBBasalMinutes    = newKey("maxSMBBasalMinutes", func(p *models.Preferences) *decimal.Decimal { return &p.MaxSMBBasalMinutes })
	MaxUAMSMBBasalMinutes = newKey("maxUAMSMBBasalMinutes", func(p *models.Preferences) *decimal.Decimal { return &p.MaxUAMSMBBasalMinutes })
	SMBDeliveryRatio      = newKey("smb_delivery_ratio", func(p *models.Preferences) *decimal.Decimal { return &p.SMBDeliveryRatio })
	BolusIncrement        = newKey("bolus_increment", func(p *models.Preferences) *decimal.Decimal { return &p.BolusIncrement })

	MaxCOB                 = newKey("maxCOB", func(p *models.Preferences) *decimal.Decimal { return &p.MaxCOB })
	Min5mCarbImpact        = newKey("min_5m_carbimpact", func(p *models.Preferences) *decimal.Decimal { return &p.Min5mCarbImpact })
	RemainingCarbsCap      = newKey("remainingCarbsCap", func(p *models.Preferences) *decimal.Decimal { return &p.RemainingCarbsCap })
	RemainingCarbsFraction = newKey("remainingCarbsFraction", func(p *models.Preferences) *decimal.Decimal { return &p.RemainingCarbsFraction })
	SkipNeutralTemps       = newKey("skip_neutral_temps", func(p *models.Preferences) *bool { return &p.SkipNeutralTemps })
	UnsuspendIfNoTemp      = newKey("unsuspend_if_no_temp", func(p *models.Preferences) *bool { return &p.UnsuspendIfNoTemp })
	SuspendZerosIOB        = newKey("suspend_zeros_iob", func(p *models.Preferences) *bool { return &p.SuspendZerosIOB })

	Curve             = newKey("curve", func(p *models.Preferences) *models.InsulinCurve { return &p.Curve })
	UseCustomPeakTime = newKey("useCustomPeakTime", func(p *models.Preferences) *bool { return &p.UseCustomPeakTime })
	InsulinPeakTime   = newKey("insulinPeakTime", func(p *models.Preferences) *decimal.Decimal { return &p.InsulinPeakTime })
)

// Guardrail members. They bound editable members and are read through the
// same accessor as the values they bound.
var (
	SMBDeliveryRatioMin = newKey("smb_delivery_ratio_min", func(p *models.Preferences) *decimal.Decimal { return &p.SMBDeliveryRatioMin })
	SMBDeliveryRatioMax = newKey("smb_delivery_ratio_max", func(p *models.Preferences) *decimal.Decimal { return &p.SMBDeliveryRatioMax })
	InsulinPeakTimeMin  = newKey("insulin_peak_time_min", func(p *models.Preferences) *decimal.Decimal { return &p.InsulinPeakTimeMin })
	InsulinPeakTimeMax  = newKey("insulin_peak_time_max", func(p *models.Preferences) *decimal.Decimal { return &p.InsulinPeakTimeMax })
	BolusIncrementMin   = newKey("bolus_increment_min", func(p *models.Preferences) *decimal.Decimal { return &p.BolusIncrementMin })
	MaxIOBMax           = newKey("max_iob_max", func(p *models.Preferences) *decimal.Decimal { return &p.MaxIOBMax })
	HalfBasalTargetMin  = newKey("half_basal_target_min", func(p *models.Preferences) *decimal.Decimal { return &p.HalfBasalTargetMin })
)
