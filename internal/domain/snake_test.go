package domain

import "testing"

func TestMoveForwardKeepsTail(t *testing.T) {
	s := NewSnake(Coord{5, 5}, DirectionRight)
	s.MoveForward(0)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d after MoveForward, want 2", s.Len())
	}
	if s.Head() != (Coord{6, 5}) {
		t.Errorf("Head() = %v, want (6,5)", s.Head())
	}

	s.TrimTail()
	if s.Len() != 1 || s.Head() != (Coord{6, 5}) {
		t.Errorf("after TrimTail body = %v", s.Body())
	}
}

func TestMoveForwardStepsOneUnit(t *testing.T) {
	for _, d := range allDirections {
		s := NewSnake(Coord{10, 10}, DirectionRight)
		before := s.Head()
		s.MoveForward(d)
		after := s.Head()

		dx, dy := after.X-before.X, after.Y-before.Y
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v: head moved by (%d,%d)", d, dx, dy)
		}
		if (Coord{dx, dy}) != d.Delta() {
			t.Errorf("%v: head moved by (%d,%d), want %v", d, dx, dy, d.Delta())
		}
	}
}

func TestMoveForwardDoesNotCommitDirection(t *testing.T) {
	s := NewSnake(Coord{10, 10}, DirectionRight)
	s.MoveForward(DirectionDown)

	if s.HeadDirection() != DirectionRight {
		t.Errorf("HeadDirection() = %v, want right", s.HeadDirection())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, d := range allDirections {
		s := NewSnake(Coord{10, 10}, d)
		if s.SetDirection(d.Opposite()) {
			t.Errorf("SetDirection(%v) accepted while heading %v", d.Opposite(), d)
		}
		if s.HeadDirection() != d {
			t.Errorf("HeadDirection() = %v after rejected reversal, want %v", s.HeadDirection(), d)
		}
	}
}

func TestOverlapTail(t *testing.T) {
	s := &Snake{
		body:      []Coord{{3, 3}, {3, 4}, {4, 4}},
		direction: DirectionUp,
	}

	for _, c := range s.body {
		if !s.OverlapTail(c.X, c.Y) {
			t.Errorf("OverlapTail(%d, %d) = false for body cell", c.X, c.Y)
		}
	}
	for _, c := range []Coord{{3, 2}, {4, 3}, {0, 0}, {-1, 3}} {
		if s.OverlapTail(c.X, c.Y) {
			t.Errorf("OverlapTail(%d, %d) = true for free cell", c.X, c.Y)
		}
	}
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewSnake(Coord{1, 1}, DirectionRight)
	body := s.Body()
	body[0] = Coord{9, 9}

	if s.Head() != (Coord{1, 1}) {
		t.Errorf("mutating Body() changed the snake: head = %v", s.Head())
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
