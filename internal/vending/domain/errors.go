package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region UnknownItemError

type UnknownItemError struct {
	Msg string
}

func (e *UnknownItemError) Error() string {
	return e.Msg
}

func (e *UnknownItemError) Is(target error) bool {
	_, ok := target.(*UnknownItemError)
	return ok
}

//endregion

//region DuplicateItemError

type DuplicateItemError struct {
	Msg string
}

func (e *DuplicateItemError) Error() string {
	return e.Msg
}

func (e *DuplicateItemError) Is(target error) bool {
	_, ok := target.(*DuplicateItemError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region UnauthorizedError

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

//endregion

//region SecretsExhaustedError

// SecretsExhaustedError is soft: a purchase that hits it is still committed
// and paid for, only the secret delivery degrades to an exhaustion notice.
type SecretsExhaustedError struct {
	Msg string
}

func (e *SecretsExhaustedError) Error() string {
	return e.Msg
}

func (e *SecretsExhaustedError) Is(target error) bool {
	_, ok := target.(*SecretsExhaustedError)
	return ok
}

//endregion
