package bwm

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidStrength   = errors.New("strength must be a positive integer")
	ErrInvalidWorkers    = errors.New("workers must not be negative")
	ErrCapacity          = errors.New("not enough blocks for watermark")
	ErrEmptyWatermark    = errors.New("watermark length must be positive")
	ErrNoBlocks          = errors.New("image has no blocks")
	ErrRemainder         = errors.New("LL subband is not a multiple of block size")
	ErrDimension         = errors.New("plane dimensions mismatch")
	ErrConsumed          = errors.New("pipeline stage already consumed")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidUTF8       = errors.New("extracted watermark is not valid UTF-8")
)
