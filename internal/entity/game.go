package entity

// Status - phase of a game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

func (that Status) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// GameState - snapshot of a game. Winner is meaningful only when Status is StatusWon.
type GameState struct {
	Board  Board  `json:"board"`
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

// NewGameState - returns the in-progress state for the given starting board.
func NewGameState(board Board) GameState {
	return GameState{
		Board:  board,
		Status: StatusInProgress,
	}
}

func (that GameState) IsFinished() bool {
	return that.Status == StatusWon
}

func (that GameState) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// Move - a single scripted call: player places a mark at Position.
type Move struct {
	Position Position `json:"position"`
	Player   Player   `json:"player"`
}
