package preferences

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"companion/internal/preferences/models"
)

type FieldSuite struct {
	suite.Suite
	acc   *accessor
	notes *recorder
}

func (s *FieldSuite) SetupTest() {
	s.acc = newAccessor()
	s.notes = &recorder{}
}

func TestFieldSuite(t *testing.T) {
	suite.Run(t, new(FieldSuite))
}

func (s *FieldSuite) bound(kind Kind) *Field {
	f := NewField("test", kind, "info")
	f.Bind(s.acc, s.notes)
	return f
}

func (s *FieldSuite) TestDecimalGuardrails() {
	s.Run("value above max is clamped and reported", func() {
		s.SetupTest()
		s.acc.prefs.SMBDeliveryRatioMin = d(s.T(), "0.05")
		s.acc.prefs.SMBDeliveryRatioMax = d(s.T(), "5")
		f := s.bound(DecimalKind{Key: SMBDeliveryRatio, Min: SMBDeliveryRatioMin.Ref(), Max: SMBDeliveryRatioMax.Ref()})

		got := f.SetDecimalValue(d(s.T(), "7.5"))

		s.Equal("5", got.String())
		s.Equal("5", s.acc.prefs.SMBDeliveryRatio.String())
		s.Require().Len(s.notes.notes, 1)
		note := s.notes.notes[0]
		s.Equal(GuardrailHit, note.Name)
		s.Equal("smb_delivery_ratio", note.Key)
		s.Contains(note.Message, "7.5")
		s.Contains(note.Message, "5")
		s.Contains(note.Message, "0.05")
	})

	s.Run("value within bounds is committed silently", func() {
		s.SetupTest()
		f := s.bound(DecimalKind{Key: SMBDeliveryRatio, Min: SMBDeliveryRatioMin.Ref(), Max: SMBDeliveryRatioMax.Ref()})

		f.SetDecimalValue(d(s.T(), "0.6"))

		s.Equal("0.6", s.acc.prefs.SMBDeliveryRatio.String())
		s.Empty(s.notes.notes)
	})

	s.Run("only min bound mentions only min", func() {
		s.SetupTest()
		f := s.bound(DecimalKind{Key: HalfBasalExerciseTarget, Min: HalfBasalTargetMin.Ref()})

		f.SetDecimalValue(d(s.T(), "80"))

		s.Equal("101", s.acc.prefs.HalfBasalExerciseTarget.String())
		s.Require().Len(s.notes.notes, 1)
		s.Contains(s.notes.notes[0].Message, "Min: 101")
		s.NotContains(s.notes.notes[0].Message, "Max:")
		s.Nil(s.notes.notes[0].Max)
	})

	s.Run("only max bound mentions only max", func() {
		s.SetupTest()
		f := s.bound(DecimalKind{Key: MaxIOB, Max: MaxIOBMax.Ref()})

		f.SetDecimalValue(d(s.T(), "31"))

		s.Equal("30", s.acc.prefs.MaxIOB.String())
		s.Require().Len(s.notes.notes, 1)
		s.Contains(s.notes.notes[0].Message, "Max: 30")
		s.NotContains(s.notes.notes[0].Message, "Min:")
	})

	s.Run("unbounded field accepts anything", func() {
		s.SetupTest()
		f := s.bound(DecimalKind{Key: MaxCOB})

		f.SetDecimalValue(d(s.T(), "-3"))

		s.Equal("-3", s.acc.prefs.MaxCOB.String())
		s.Empty(s.notes.notes)
	})

	s.Run("bounds are read at write time", func() {
		s.SetupTest()
		f := s.bound(DecimalKind{Key: AutosensMin, Max: AutosensMax.Ref()})
		s.acc.prefs.AutosensMax = d(s.T(), "1.1")

		f.SetDecimalValue(d(s.T(), "1.15"))

		s.Equal("1.1", s.acc.prefs.AutosensMin.String())
	})

	s.Run("missing publisher still clamps", func() {
		s.SetupTest()
		f := NewField("test", DecimalKind{Key: MaxIOB, Max: MaxIOBMax.Ref()}, "")
		f.Bind(s.acc, nil)

		f.SetDecimalValue(d(s.T(), "99"))

		s.Equal("30", s.acc.prefs.MaxIOB.String())
	})
}

func (s *FieldSuite) TestWrongVariantWritesAreIgnored() {
	s.Run("bool write on decimal field", func() {
		s.SetupTest()
		before := s.acc.prefs.MaxCOB
		f := s.bound(DecimalKind{Key: MaxCOB})

		f.SetBoolValue(true)

		s.True(before.Equal(s.acc.prefs.MaxCOB))
		s.False(f.BoolValue())
	})

	s.Run("decimal write on bool field", func() {
		s.SetupTest()
		f := s.bound(BoolKind{Key: ExerciseMode})

		got := f.SetDecimalValue(d(s.T(), "1"))

		s.Equal("1", got.String())
		s.False(s.acc.prefs.ExerciseMode)
		s.True(f.DecimalValue().IsZero())
	})

	s.Run("curve write on bool field", func() {
		s.SetupTest()
		f := s.bound(BoolKind{Key: ExerciseMode})

		f.SetCurveValue(models.InsulinCurveBilinear)

		s.Equal(models.DefaultInsulinCurve, s.acc.prefs.Curve)
		s.Equal(models.DefaultInsulinCurve, f.CurveValue())
	})
}

func (s *FieldSuite) TestPassThroughKinds() {
	s.Run("bool round trip", func() {
		s.SetupTest()
		f := s.bound(BoolKind{Key: EnableUAM})

		f.SetBoolValue(true)

		s.True(f.BoolValue())
		s.True(s.acc.prefs.EnableUAM)
	})

	s.Run("curve round trip", func() {
		s.SetupTest()
		f := s.bound(CurveKind{Key: Curve})

		f.SetCurveValue(models.InsulinCurveUltraRapid)

		s.Equal(models.InsulinCurveUltraRapid, f.CurveValue())
		s.Equal(models.InsulinCurveUltraRapid, s.acc.prefs.Curve)
	})
}

func (s *FieldSuite) TestDetachedFieldDegrades() {
	s.acc.prefs.EnableUAM = true
	s.acc.prefs.MaxCOB = d(s.T(), "100")
	s.acc.prefs.Curve = models.InsulinCurveBilinear

	boolField := s.bound(BoolKind{Key: EnableUAM})
	decField := s.bound(DecimalKind{Key: MaxCOB})
	curveField := s.bound(CurveKind{Key: Curve})
	for _, f := range []*Field{boolField, decField, curveField} {
		f.Detach()
		s.False(f.Bound())
	}

	s.False(boolField.BoolValue())
	s.True(decField.DecimalValue().IsZero())
	s.Equal(models.InsulinCurveRapidActing, curveField.CurveValue())

	boolField.SetBoolValue(false)
	decField.SetDecimalValue(d(s.T(), "1"))
	curveField.SetCurveValue(models.InsulinCurveUltraRapid)

	s.True(s.acc.prefs.EnableUAM)
	s.Equal("100", s.acc.prefs.MaxCOB.String())
	s.Equal(models.InsulinCurveBilinear, s.acc.prefs.Curve)
}

func (s *FieldSuite) TestIdentity() {
	a := NewField("a", BoolKind{Key: EnableUAM}, "")
	b := NewField("a", BoolKind{Key: EnableUAM}, "")
	s.NotEqual(a.ID, b.ID)
	s.Equal("enableUAM", a.Key())
}
