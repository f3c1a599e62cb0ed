package conway

import "errors"

// ErrUnknownOperator is returned by Apply and Lookup for names or notation
// letters that do not denote an operator.
var ErrUnknownOperator = errors.New("conway: unknown operator")

// ErrUnknownSeed is returned by Build when notation does not end in a seed
// letter.
var ErrUnknownSeed = errors.New("conway: unknown seed")
