package resolver

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	diceMocks "github.com/KirkDiggler/zanzibar/internal/dice/mocks"
	"github.com/KirkDiggler/zanzibar/internal/effects"
	"github.com/KirkDiggler/zanzibar/internal/models"
)

type ResolverTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	resolver   *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)

	r, err := New(nil, s.mockRoller)
	s.Require().NoError(err)
	s.resolver = r
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestNewRequiresRoller() {
	_, err := New(nil, nil)
	s.Error(err)
}

func (s *ResolverTestSuite) TestZeroValueConfigGetsDefaults() {
	r, err := New(&Config{}, s.mockRoller)
	s.Require().NoError(err)

	tracker := effects.NewTracker()
	tracker.Apply(models.EffectLuckBoost, 20, 2)
	tracker.Apply(models.EffectFocusBoost, 30, 2)

	// Three six-sided dice, a 30% luck threshold and a focus floor of 2
	// all apply even when the config was constructed empty
	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 3, 5})
	s.mockRoller.EXPECT().Roll(100).Return(90)

	outcome := r.Resolve(tracker)

	s.Equal([]int{1, 3, 5}, outcome.RawFaces)
	s.Equal([]int{2, 3, 5}, outcome.Faces)
	s.False(outcome.LuckApplied)
	s.True(outcome.FocusApplied)
}

func (s *ResolverTestSuite) TestPartialConfigKeepsOverrides() {
	r, err := New(&Config{DiceSides: 8}, s.mockRoller)
	s.Require().NoError(err)

	s.mockRoller.EXPECT().RollN(3, 8).Return([]int{7, 7, 7})

	outcome := r.Resolve(effects.NewTracker())

	s.Equal(models.HandThreeOfAKind, outcome.Category)
}

func (s *ResolverTestSuite) TestRawRollWithoutEffects() {
	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{2, 4, 6})

	outcome := s.resolver.Resolve(effects.NewTracker())

	s.Equal([]int{2, 4, 6}, outcome.RawFaces)
	s.Equal([]int{2, 4, 6}, outcome.Faces)
	s.Equal(models.HandPoints, outcome.Category)
	s.Equal(5, outcome.ChipDelta)
	s.False(outcome.LuckApplied)
	s.False(outcome.FocusApplied)
}

func (s *ResolverTestSuite) TestRawZanzibarWithoutLuck() {
	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{6, 5, 4})

	outcome := s.resolver.Resolve(effects.NewTracker())

	s.Equal(models.HandZanzibar, outcome.Category)
	s.Equal(-25, outcome.ChipDelta)
	s.False(outcome.LuckApplied)
}

func (s *ResolverTestSuite) TestLuckBoostUpgradesRoll() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectLuckBoost, 20, 2)

	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 3, 5})
	// Percent roll at or under the threshold procs the upgrade
	s.mockRoller.EXPECT().Roll(100).Return(30)

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{1, 3, 5}, outcome.RawFaces)
	s.Equal([]int{4, 5, 6}, outcome.Faces)
	s.Equal(models.HandZanzibar, outcome.Category)
	s.Equal(-25, outcome.ChipDelta)
	s.True(outcome.LuckApplied)
}

func (s *ResolverTestSuite) TestLuckBoostMissesAboveThreshold() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectLuckBoost, 20, 2)

	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 3, 5})
	s.mockRoller.EXPECT().Roll(100).Return(31)

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{1, 3, 5}, outcome.Faces)
	s.Equal(models.HandPoints, outcome.Category)
	s.False(outcome.LuckApplied)
}

func (s *ResolverTestSuite) TestFocusBoostClampsLowFaces() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectFocusBoost, 30, 2)

	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 1, 3})

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{1, 1, 3}, outcome.RawFaces)
	s.Equal([]int{2, 2, 3}, outcome.Faces)
	s.True(outcome.FocusApplied)
}

func (s *ResolverTestSuite) TestFocusBoostLeavesHighFacesAlone() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectFocusBoost, 30, 2)

	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{2, 4, 6})

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{2, 4, 6}, outcome.Faces)
	s.False(outcome.FocusApplied)
}

func (s *ResolverTestSuite) TestLuckThenFocusAreIndependent() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectLuckBoost, 20, 2)
	tracker.Apply(models.EffectFocusBoost, 30, 2)

	// Luck misses, focus still clamps the raw faces
	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 2, 3})
	s.mockRoller.EXPECT().Roll(100).Return(90)

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{2, 2, 3}, outcome.Faces)
	s.False(outcome.LuckApplied)
	s.True(outcome.FocusApplied)
}

func (s *ResolverTestSuite) TestEnergyAndMoodBoostsNeverAlterDice() {
	tracker := effects.NewTracker()
	tracker.Apply(models.EffectEnergyBoost, 50, 3)
	tracker.Apply(models.EffectMoodBoost, 25, 3)

	s.mockRoller.EXPECT().RollN(3, 6).Return([]int{1, 2, 5})

	outcome := s.resolver.Resolve(tracker)

	s.Equal([]int{1, 2, 5}, outcome.Faces)
	s.False(outcome.LuckApplied)
	s.False(outcome.FocusApplied)
}
