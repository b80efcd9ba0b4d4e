package preferences

// Catalog builds the preferences editor's sections. Every call returns fresh,
// unbound fields with new identities.
func Catalog() []FieldSection {
	return []FieldSection{
		NewFieldSection("OpenAPS main settings",
			NewField("Max IOB", DecimalKind{Key: MaxIOB, Max: MaxIOBMax.Ref()},
				"Max IOB is the maximum amount of insulin on board from all sources, both basal and bolus, that the loop is allowed to reach when running a temp basal or an SMB. 0 means the loop never adds insulin above your scheduled basal."),
			NewField("Max Daily Safety Multiplier", DecimalKind{Key: MaxDailySafetyMultiplier},
				"Limits the temp basal rate to this multiple of the highest scheduled basal rate of the day. Default 3."),
			NewField("Current Basal Safety Multiplier", DecimalKind{Key: CurrentBasalSafetyMultiplier},
				"Limits the temp basal rate to this multiple of the current scheduled basal rate. Default 4."),
			NewField("Autosens Max", DecimalKind{Key: AutosensMax, Min: AutosensMin.Ref()},
				"Upper limit on how far autosens may raise the sensitivity ratio. Default 1.2."),
			NewField("Autosens Min", DecimalKind{Key: AutosensMin, Max: AutosensMax.Ref()},
				"Lower limit on how far autosens may lower the sensitivity ratio. Default 0.7."),
			NewField("Rewind Resets Autosens", BoolKind{Key: RewindResetsAutosens},
				"Resets the autosens ratio to 1 whenever the pump is rewound."),
		),
		NewFieldSection("OpenAPS targets settings",
			NewField("High Temptarget Raises Sensitivity", BoolKind{Key: HighTemptargetRaisesSensitivity},
				"A temp target above 110 mg/dL (6.1 mmol/L) raises sensitivity, as for exercise."),
			NewField("Low Temptarget Lowers Sensitivity", BoolKind{Key: LowTemptargetLowersSensitivity},
				"A temp target below 100 mg/dL (5.6 mmol/L) lowers sensitivity."),
			NewField("Sensitivity Raises Target", BoolKind{Key: SensitivityRaisesTarget},
				"Raises the target when autosens detects sensitivity."),
			NewField("Resistance Lowers Target", BoolKind{Key: ResistanceLowersTarget},
				"Lowers the target when autosens detects resistance."),
			NewField("Exercise Mode", BoolKind{Key: ExerciseMode},
				"Any high temp target raises sensitivity while exercise mode is on."),
			NewField("Half Basal Exercise Target", DecimalKind{Key: HalfBasalExerciseTarget, Min: HalfBasalTargetMin.Ref()},
				"The temp target (mg/dL) at which basal is halved. Must stay above 100."),
		),
		NewFieldSection("OpenAPS SMB settings",
			NewField("Enable SMB Always", BoolKind{Key: EnableSMBAlways},
				"Allows super micro boluses at all times."),
			NewField("Enable SMB With COB", BoolKind{Key: EnableSMBWithCOB},
				"Allows super micro boluses while carbs are on board."),
			NewField("Enable UAM", BoolKind{Key: EnableUAM},
				"Detects unannounced meals from glucose rises and doses for them."),
			NewField("Max SMB Basal Minutes", DecimalKind{Key: MaxSMBBasalMinutes},
				"Caps a single SMB at this many minutes of scheduled basal. Default 30."),
			NewField("Max UAM SMB Basal Minutes", DecimalKind{Key: MaxUAMSMBBasalMinutes},
				"Caps a single SMB for an unannounced meal at this many minutes of scheduled basal. Default 30."),
			NewField("SMB Delivery Ratio", DecimalKind{Key: SMBDeliveryRatio, Min: SMBDeliveryRatioMin.Ref(), Max: SMBDeliveryRatioMax.Ref()},
				"Share of the calculated insulin requirement delivered as one SMB. Default 0.5."),
			NewField("Bolus Increment", DecimalKind{Key: BolusIncrement, Min: BolusIncrementMin.Ref()},
				"Smallest bolus step the pump can deliver."),
		),
		NewFieldSection("Insulin curve",
			NewField("Insulin curve", CurveKind{Key: Curve},
				"Insulin activity model: rapid-acting, ultra-rapid or bilinear."),
			NewField("Use Custom Peak Time", BoolKind{Key: UseCustomPeakTime},
				"Uses the peak time below instead of the curve default."),
			NewField("Insulin Peak Time", DecimalKind{Key: InsulinPeakTime, Min: InsulinPeakTimeMin.Ref(), Max: InsulinPeakTimeMax.Ref()},
				"Minutes from injection to peak insulin activity when a custom peak time is used."),
		),
		NewFieldSection("OpenAPS other settings",
			NewField("Max COB", DecimalKind{Key: MaxCOB},
				"Maximum carbs on board the loop will count. Default 120."),
			NewField("Min 5m Carbimpact", DecimalKind{Key: Min5mCarbImpact},
				"Minimum assumed carb absorption per 5 minutes (mg/dL). Default 8."),
			NewField("Remaining Carbs Cap", DecimalKind{Key: RemainingCarbsCap},
				"Upper limit on carbs assumed to still be absorbing. Default 90."),
			NewField("Remaining Carbs Fraction", DecimalKind{Key: RemainingCarbsFraction},
				"Fraction of carbs assumed to be absorbed within four hours. Default 1."),
			NewField("Skip Neutral Temps", BoolKind{Key: SkipNeutralTemps},
				"Skips temp basals equal to the scheduled rate around the top of the hour."),
			NewField("Unsuspend If No Temp", BoolKind{Key: UnsuspendIfNoTemp},
				"Resumes a suspended pump when no temp basal is running."),
			NewField("Suspend Zeros IOB", BoolKind{Key: SuspendZerosIOB},
				"Treats pump suspends as zero temp basals in IOB."),
		),
	}
}

// FindField returns the first field editing the member named key.
func FindField(sections []FieldSection, key string) (*Field, bool) {
	for _, s := range sections {
		for _, f := range s.fields {
			if f.Key() == key {
				return f, true
			}
		}
	}
	return nil, false
}
