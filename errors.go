package merkling

import "errors"

// ErrEmptyInput is returned from [NewTree]
// when given zero blocks; no tree can commit to an empty sequence.
var ErrEmptyInput = errors.New("cannot build a tree from zero blocks")

// ErrLeafNotFound is returned from [*Tree.GenerateProof]
// when no leaf in the tree matches the digest of the queried data.
var ErrLeafNotFound = errors.New("no leaf matches the queried data")
