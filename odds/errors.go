package odds

// Error is the odds driver's closed set of input-validation failures. It
// is a plain comparable value (not a wrapped error chain) so callers can
// compare it directly or use errors.Is against the sentinels below.
type Error string

func (e Error) Error() string {
	return string(e)
}

// The five validation failure kinds the odds driver can report. Internal
// invariant violations (a malformed CardSet reaching the evaluator, a
// combination worker writing outside its slice) are never reported this
// way — they panic, because they indicate a bug in the driver itself, not
// a bad caller input.
const (
	ErrTooFewPlayers              Error = "must have at least two players"
	ErrTooManyPlayers             Error = "cannot have more than 23 players"
	ErrPocketsMustHaveTwoCardsEach Error = "every pocket must have exactly two cards"
	ErrBoardTooLarge              Error = "board cannot have more than five cards"
	ErrDuplicateCards             Error = "pockets and board must not share any cards"
)
