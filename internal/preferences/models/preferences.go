package models

import "github.com/shopspring/decimal"

// Preferences is the settings aggregate edited by the preferences editor.
// Field names follow the dosing algorithm's preferences document.
//
// Invariants:
//   - The member set is fixed; keys in the preferences package reference
//     members by pointer and are never renamed at runtime.
//   - Guardrail members (the *Min/*Max limits) bound other members and are not
//     themselves exposed as editable fields.
type Preferences struct {
	MaxIOB                       decimal.Decimal `json:"max_iob" yaml:"max_iob"`
	MaxDailySafetyMultiplier     decimal.Decimal `json:"max_daily_safety_multiplier" yaml:"max_daily_safety_multiplier"`
	CurrentBasalSafetyMultiplier decimal.Decimal `json:"current_basal_safety_multiplier" yaml:"current_basal_safety_multiplier"`
	AutosensMax                  decimal.Decimal `json:"autosens_max" yaml:"autosens_max"`
	AutosensMin                  decimal.Decimal `json:"autosens_min" yaml:"autosens_min"`
	RewindResetsAutosens         bool            `json:"rewind_resets_autosens" yaml:"rewind_resets_autosens"`

	HighTemptargetRaisesSensitivity bool            `json:"high_temptarget_raises_sensitivity" yaml:"high_temptarget_raises_sensitivity"`
	LowTemptargetLowersSensitivity  bool            `json:"low_temptarget_lowers_sensitivity" yaml:"low_temptarget_lowers_sensitivity"`
	SensitivityRaisesTarget         bool            `json:"sensitivity_raises_target" yaml:"sensitivity_raises_target"`
	ResistanceLowersTarget          bool            `json:"resistance_lowers_target" yaml:"resistance_lowers_target"`
	ExerciseMode                    bool            `json:"exercise_mode" yaml:"exercise_mode"`
	HalfBasalExerciseTarget         decimal.Decimal `json:"half_basal_exercise_target" yaml:"half_basal_exercise_target"`

	EnableSMBAlways        bool            `json:"enableSMB_always" yaml:"enableSMB_always"`
	EnableSMBWithCOB       bool            `json:"enableSMB_with_COB" yaml:"enableSMB_with_COB"`
	EnableUAM              bool            `json:"enableUAM" yaml:"enableUAM"`
	MaxSMBBasalMinutes     decimal.Decimal `json:"maxSMBBasalMinutes" yaml:"maxSMBBasalMinutes"`
	MaxUAMSMBBasalMinutes  decimal.Decimal `json:"maxUAMSMBBasalMinutes" yaml:"maxUAMSMBBasalMinutes"`
	SMBDeliveryRatio       decimal.Decimal `json:"smb_delivery_ratio" yaml:"smb_delivery_ratio"`
	BolusIncrement         decimal.Decimal `json:"bolus_increment" yaml:"bolus_increment"`
	MaxCOB                 decimal.Decimal `json:"maxCOB" yaml:"maxCOB"`
	Min5mCarbImpact        decimal.Decimal `json:"min_5m_carbimpact" yaml:"min_5m_carbimpact"`
	RemainingCarbsCap      decimal.Decimal `json:"remainingCarbsCap" yaml:"remainingCarbsCap"`
	RemainingCarbsFraction decimal.Decimal `json:"remainingCarbsFraction" yaml:"remainingCarbsFraction"`
	SkipNeutralTemps       bool            `json:"skip_neutral_temps" yaml:"skip_neutral_temps"`
	UnsuspendIfNoTemp      bool            `json:"unsuspend_if_no_temp" yaml:"unsuspend_if_no_temp"`
	Curve                  InsulinCurve    `json:"curve" yaml:"curve"`
	UseCustomPeakTime      bool            `json:"useCustomPeakTime" yaml:"useCustomPeakTime"`
	InsulinPeakTime        decimal.Decimal `json:"insulinPeakTime" yaml:"insulinPeakTime"`
	SuspendZerosIOB        bool            `json:"suspend_zeros_iob" yaml:"suspend_zeros_iob"`

	SMBDeliveryRatioMin decimal.Decimal `json:"smb_delivery_ratio_min" yaml:"smb_delivery_ratio_min"`
	SMBDeliveryRatioMax decimal.Decimal `json:"smb_delivery_ratio_max" yaml:"smb_delivery_ratio_max"`
	InsulinPeakTimeMin  decimal.Decimal `json:"insulin_peak_time_min" yaml:"insulin_peak_time_min"`
	InsulinPeakTimeMax  decimal.Decimal `json:"insulin_peak_time_max" yaml:"insulin_peak_time_max"`
	BolusIncrementMin   decimal.Decimal `json:"bolus_increment_min" yaml:"bolus_increment_min"`
	MaxIOBMax           decimal.Decimal `json:"max_iob_max" yaml:"max_iob_max"`
	HalfBasalTargetMin  decimal.Decimal `json:"half_basal_target_min" yaml:"half_basal_target_min"`
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// Defaults returns the factory preferences.
func Defaults() Preferences {
	return Preferences{
		MaxIOB:                       dec("0"),
		MaxDailySafetyMultiplier:     dec("3"),
		CurrentBasalSafetyMultiplier: dec("4"),
		AutosensMax:                  dec("1.2"),
		AutosensMin:                  dec("0.7"),
		RewindResetsAutosens:         true,

		SensitivityRaisesTarget: true,
		HalfBasalExerciseTarget: dec("160"),

		MaxSMBBasalMinutes:     dec("30"),
		MaxUAMSMBBasalMinutes:  dec("30"),
		SMBDeliveryRatio:       dec("0.5"),
		BolusIncrement:         dec("0.1"),
		MaxCOB:                 dec("120"),
		Min5mCarbImpact:        dec("8"),
		RemainingCarbsCap:      dec("90"),
		RemainingCarbsFraction: dec("1"),
		Curve:                  DefaultInsulinCurve,
		InsulinPeakTime:        dec("75"),

		SMBDeliveryRatioMin: dec("0.3"),
		SMBDeliveryRatioMax: dec("0.7"),
		InsulinPeakTimeMin:  dec("35"),
		InsulinPeakTimeMax:  dec("120"),
		BolusIncrementMin:   dec("0.025"),
		MaxIOBMax:           dec("30"),
		HalfBasalTargetMin:  dec("101"),
	}
}
