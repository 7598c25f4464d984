package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ffnet/matrix"
)

// OwnershipSuite groups row-view aliasing and release discipline tests.
type OwnershipSuite struct {
	suite.Suite
	tr     *matrix.Tracker
	parent *matrix.Dense[float64]
}

func (s *OwnershipSuite) SetupTest() {
	s.tr = matrix.NewTracker()
	s.parent = MustDense(s.T(), 3, 4, matrix.WithTracker(s.tr))
}

// TestViewWritesStayInRow: writing through a view touches only that row.
func (s *OwnershipSuite) TestViewWritesStayInRow() {
	view, err := matrix.RowView(s.parent, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), view.IsView())
	require.Equal(s.T(), 1, view.Rows())
	require.Equal(s.T(), 4, view.Cols())
	require.Equal(s.T(), s.parent.Stride(), view.Stride())

	require.NoError(s.T(), view.Fill(7))
	require.NoError(s.T(), view.Set(0, 2, 9))

	RequireRows(s.T(), s.parent, [][]float64{
		{0, 0, 0, 0},
		{7, 7, 9, 7},
		{0, 0, 0, 0},
	})
	require.NoError(s.T(), view.Release())
}

// TestParentWritesVisibleInView: the alias is two-way.
func (s *OwnershipSuite) TestParentWritesVisibleInView() {
	view, err := s.parent.Row(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.parent.Set(2, 3, 5))
	require.Equal(s.T(), 5.0, MustAt(s.T(), view, 0, 3))
	require.NoError(s.T(), view.Release())
}

// TestViewBoundsAreLogical: the stride reaches the next row, bounds do not.
func (s *OwnershipSuite) TestViewBoundsAreLogical() {
	view, err := s.parent.Row(0)
	require.NoError(s.T(), err)

	_, err = view.At(1, 0)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
	require.ErrorIs(s.T(), view.Set(0, 4, 1), matrix.ErrOutOfRange)

	_, err = matrix.RowView(s.parent, 3)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)
	_, err = matrix.RowView(s.parent, -1)
	require.ErrorIs(s.T(), err, matrix.ErrOutOfRange)

	require.NoError(s.T(), view.Release())
}

// TestViewIsNotAnAllocation: views never touch the tracker.
func (s *OwnershipSuite) TestViewIsNotAnAllocation() {
	view, err := s.parent.Row(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, s.tr.Allocs())
	require.Equal(s.T(), 1, s.parent.Views())

	require.NoError(s.T(), view.Release())
	require.Equal(s.T(), 0, s.tr.Frees(), "releasing a view frees nothing")
	require.Equal(s.T(), 0, s.parent.Views())
	require.False(s.T(), s.parent.Released())
}

// TestOwnerCannotOutliveViews: owner release fails while a view is live.
func (s *OwnershipSuite) TestOwnerCannotOutliveViews() {
	view, err := s.parent.Row(1)
	require.NoError(s.T(), err)

	require.ErrorIs(s.T(), s.parent.Release(), matrix.ErrBorrowed)
	require.False(s.T(), s.parent.Released(), "failed release leaves owner usable")
	require.Equal(s.T(), 0, s.tr.Frees())

	require.NoError(s.T(), view.Release())
	require.NoError(s.T(), s.parent.Release())
	require.Equal(s.T(), 1, s.tr.Frees())
	require.Zero(s.T(), s.tr.Live())
	require.Zero(s.T(), s.tr.Elements())
}

// TestDoubleRelease: the second Release of owner or view is an error, not a free.
func (s *OwnershipSuite) TestDoubleRelease() {
	view, err := s.parent.Row(0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), view.Release())
	require.ErrorIs(s.T(), view.Release(), matrix.ErrReleased)
	require.Equal(s.T(), 0, s.parent.Views(), "double view release must not underflow the borrow count")

	require.NoError(s.T(), s.parent.Release())
	require.ErrorIs(s.T(), s.parent.Release(), matrix.ErrReleased)
	require.Equal(s.T(), 1, s.tr.Frees())
}

// TestUseAfterRelease: every operation on a released handle fails.
func (s *OwnershipSuite) TestUseAfterRelease() {
	view, err := s.parent.Row(0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), view.Release())

	_, err = view.At(0, 0)
	require.ErrorIs(s.T(), err, matrix.ErrReleased)

	require.NoError(s.T(), s.parent.Release())
	_, err = s.parent.At(0, 0)
	require.ErrorIs(s.T(), err, matrix.ErrReleased)
	require.ErrorIs(s.T(), s.parent.Set(0, 0, 1), matrix.ErrReleased)
	require.ErrorIs(s.T(), s.parent.Fill(1), matrix.ErrReleased)
	require.ErrorIs(s.T(), s.parent.Randomize(0, 1), matrix.ErrReleased)
	require.ErrorIs(s.T(), s.parent.Sigmoid(), matrix.ErrReleased)
	_, err = s.parent.Row(0)
	require.ErrorIs(s.T(), err, matrix.ErrReleased)
	_, err = s.parent.Clone()
	require.ErrorIs(s.T(), err, matrix.ErrReleased)
}

// TestCopyIntoView: dense → view lands in the parent row.
func (s *OwnershipSuite) TestCopyIntoView() {
	src := NewFilledDense(s.T(), 1, 4, []float64{1, 2, 3, 4})
	view, err := s.parent.Row(2)
	require.NoError(s.T(), err)

	require.NoError(s.T(), matrix.Copy(view, src))
	require.NoError(s.T(), view.Release())

	RequireRows(s.T(), s.parent, [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 2, 3, 4},
	})
}

// TestCopyFromView: view → dense reads only the view's row.
func (s *OwnershipSuite) TestCopyFromView() {
	require.NoError(s.T(), s.parent.Apply(func(i, j int, _ float64) float64 { return float64(i*4 + j) }))
	view, err := s.parent.Row(1)
	require.NoError(s.T(), err)
	dst := MustDense(s.T(), 1, 4)

	require.NoError(s.T(), matrix.Copy(dst, view))
	RequireRows(s.T(), dst, [][]float64{{4, 5, 6, 7}})

	wrong := MustDense(s.T(), 1, 3)
	require.ErrorIs(s.T(), matrix.Copy(wrong, view), matrix.ErrDimensionMismatch)
	require.NoError(s.T(), view.Release())
}

// TestCloneOfViewIsOwner: a clone detaches from the parent buffer.
func (s *OwnershipSuite) TestCloneOfViewIsOwner() {
	view, err := s.parent.Row(1)
	require.NoError(s.T(), err)
	clone, err := view.Clone()
	require.NoError(s.T(), err)
	require.NoError(s.T(), view.Release())

	require.False(s.T(), clone.IsView())
	require.Equal(s.T(), 2, s.tr.Allocs(), "clone inherits the tracker")
	require.NoError(s.T(), clone.Set(0, 0, 1))
	require.Equal(s.T(), 0.0, MustAt(s.T(), s.parent, 1, 0))
	require.NoError(s.T(), clone.Release())
}

func TestOwnershipSuite(t *testing.T) {
	suite.Run(t, new(OwnershipSuite))
}
