package base

import "github.com/heartmarshall/fairplay-backend/internal/domain"

// Patch and Patcher are re-exported so repository code reads naturally.
type (
	Patch   = domain.Patch
	Patcher = domain.Patcher
)
