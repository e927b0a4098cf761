package random_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/edover/praeda-go/internal/errors"
	"github.com/edover/praeda-go/internal/pkg/random"
)

type RandomTestSuite struct {
	suite.Suite
}

func TestRandomSuite(t *testing.T) {
	suite.Run(t, new(RandomTestSuite))
}

func (s *RandomTestSuite) TestPickWeightedEmpty() {
	src := random.New(1)

	_, err := random.PickWeighted[string](src, nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsEmptyDistribution(err))

	_, err = random.PickWeighted(src, []random.Weighted[string]{
		{Value: "a", Weight: 0},
		{Value: "b", Weight: 0},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsEmptyDistribution(err))
}

func (s *RandomTestSuite) TestPickWeightedDistribution() {
	src := random.New(42)
	entries := []random.Weighted[string]{
		{Value: "A", Weight: 1},
		{Value: "B", Weight: 3},
	}

	const draws = 100_000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		v, err := random.PickWeighted(src, entries)
		s.Require().NoError(err)
		counts[v]++
	}

	// Expected frequency of B is 0.75; allow a generous statistical margin.
	freq := float64(counts["B"]) / draws
	s.Assert().InDelta(0.75, freq, 0.01)
}

func (s *RandomTestSuite) TestPickWeightedSkipsNonPositive() {
	src := random.New(7)
	entries := []random.Weighted[string]{
		{Value: "dead", Weight: 0},
		{Value: "live", Weight: 5},
		{Value: "negative", Weight: -3},
	}

	for i := 0; i < 1000; i++ {
		v, err := random.PickWeighted(src, entries)
		s.Require().NoError(err)
		s.Assert().Equal("live", v)
	}
}

func (s *RandomTestSuite) TestPickUniform() {
	src := random.New(3)

	_, err := random.PickUniform(src, []string{})
	s.Require().Error(err)
	s.Assert().True(errors.IsEmptyDistribution(err))

	v, err := random.PickUniform(src, []string{"only"})
	s.Require().NoError(err)
	s.Assert().Equal("only", v)
}

func (s *RandomTestSuite) TestSeedDeterminism() {
	entries := []random.Weighted[int]{
		{Value: 1, Weight: 2},
		{Value: 2, Weight: 5},
		{Value: 3, Weight: 1},
	}

	first := make([]int, 0, 100)
	second := make([]int, 0, 100)

	src := random.New(99)
	for i := 0; i < 100; i++ {
		v, err := random.PickWeighted(src, entries)
		s.Require().NoError(err)
		first = append(first, v)
	}

	src = random.New(99)
	for i := 0; i < 100; i++ {
		v, err := random.PickWeighted(src, entries)
		s.Require().NoError(err)
		second = append(second, v)
	}

	s.Assert().Equal(first, second)
}

func (s *RandomTestSuite) TestRange() {
	src := random.New(11)
	for i := 0; i < 1000; i++ {
		v := random.Range(src, 5, 10)
		s.Assert().GreaterOrEqual(v, 5.0)
		s.Assert().Less(v, 10.0)
	}

	s.Assert().Equal(2.5, random.Range(src, 2.5, 2.5))
	s.Assert().Equal(4.0, random.Range(src, 4.0, 1.0))
}

func (s *RandomTestSuite) TestBernoulliClamps() {
	src := random.New(17)

	for i := 0; i < 100; i++ {
		s.Assert().False(random.Bernoulli(src, 0))
		s.Assert().False(random.Bernoulli(src, -0.5))
		s.Assert().True(random.Bernoulli(src, 1))
		s.Assert().True(random.Bernoulli(src, 2.3))
	}
}
