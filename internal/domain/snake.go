package domain

type Snake struct {
	body      []Coord
	direction Direction
}

func NewSnake(head Coord, direction Direction) *Snake {
	return &Snake{
		body:      []Coord{head},
		direction: direction,
	}
}

func (s *Snake) Head() Coord {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Coord {
	body := make([]Coord, len(s.body))
	copy(body, s.body)
	return body
}

// HeadDirection returns the last committed direction.
func (s *Snake) HeadDirection() Direction {
	return s.direction
}

// SetDirection commits dir unless it reverses the current heading.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.direction) {
		return false
	}
	s.direction = dir
	return true
}

// NextHead returns the cell the head would occupy after one step in
// dir, or in the committed direction when dir is zero.
func (s *Snake) NextHead(dir Direction) Coord {
	if dir == 0 {
		dir = s.direction
	}
	return s.Head().Add(dir.Delta())
}

// MoveForward prepends the next head. The tail is left in place: the
// caller trims it unless the move eats food.
func (s *Snake) MoveForward(dir Direction) {
	head := s.NextHead(dir)
	s.body = append(s.body, Coord{})
	copy(s.body[1:], s.body)
	s.body[0] = head
}

func (s *Snake) TrimTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

func (s *Snake) OverlapTail(x, y int) bool {
	for _, cell := range s.body {
		if cell.X == x && cell.Y == y {
			return true
		}
	}
	return false
}
