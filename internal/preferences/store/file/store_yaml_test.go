package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"companion/internal/preferences/models"
	"companion/pkg/platform/sentinel"
)

type YAMLStoreSuite struct {
	suite.Suite
	dir   string
	store *Store
	ctx   context.Context
}

func (s *YAMLStoreSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = New(filepath.Join(s.dir, "preferences.yaml"))
	s.ctx = context.Background()
}

func TestYAMLStoreSuite(t *testing.T) {
	suite.Run(t, new(YAMLStoreSuite))
}

func (s *YAMLStoreSuite) TestMissingFile() {
	_, err := s.store.Load(s.ctx)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *YAMLStoreSuite) TestRoundTrip() {
	prefs := models.Defaults()
	prefs.SMBDeliveryRatio = decimal.RequireFromString("0.65")
	prefs.Curve = models.InsulinCurveUltraRapid
	prefs.ExerciseMode = true

	s.Require().NoError(s.store.Save(s.ctx, &prefs))
	got, err := s.store.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal("0.65", got.SMBDeliveryRatio.String())
	s.Equal(models.InsulinCurveUltraRapid, got.Curve)
	s.True(got.ExerciseMode)
	s.Equal("0.025", got.BolusIncrementMin.String())

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1, "temp file should be renamed away")
}

func (s *YAMLStoreSuite) TestPartialDocumentKeepsDefaults() {
	doc := "maxCOB: 100\ncurve: bilinear\nenableUAM: true\n"
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte(doc), 0o600))

	got, err := s.store.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal("100", got.MaxCOB.String())
	s.Equal(models.InsulinCurveBilinear, got.Curve)
	s.True(got.EnableUAM)
	s.Equal("1.2", got.AutosensMax.String())
}

func (s *YAMLStoreSuite) TestInvalidDocument() {
	s.Require().NoError(os.WriteFile(s.store.Path(), []byte("curve: slow\n"), 0o600))

	_, err := s.store.Load(s.ctx)
	s.Require().Error(err)
	s.NotErrorIs(err, sentinel.ErrNotFound)
}
