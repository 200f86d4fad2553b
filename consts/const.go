package consts

const (
	HandSize = 7

	MinPlayers = 2
	MaxPlayers = 4

	// Seat taken by the AI when playing against the computer.
	AIPlayer = 1

	Clockwise        = 1
	CounterClockwise = -1

	DrawTwoAmount      = 2
	WildDrawFourAmount = 4
	UnoPenalty         = 2
	FalseCallPenalty   = 2

	AIDeclareChance = 80
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsPlayerInvalid      = NewErr(1, true, "Player invalid. ")
	ErrorsCardInvalid        = NewErr(1, false, "Card invalid. ")
	ErrorsNotYourTurn        = NewErr(1, false, "Not your turn. ")
	ErrorsInvalidPlay        = NewErr(1, false, "Card does not match the current card. ")
	ErrorsInvalidDeclaration = NewErr(1, false, "UNO can only be declared with one card left. ")
	ErrorsColorPending       = NewErr(1, false, "A color must be chosen first. ")
	ErrorsNoColorPending     = NewErr(1, false, "No color to choose. ")
	ErrorsColorInvalid       = NewErr(1, false, "Color invalid. ")
	ErrorsAlreadyDrew        = NewErr(1, false, "Already drew this turn. ")
	ErrorsGameOver           = NewErr(1, true, "Game over. ")
)
