package mmarr

type arrayError string

var _ error = arrayError("")

func (err arrayError) Error() string {
	return string(err)
}

const (
	ErrLength  = arrayError("length must be at least 1")
	ErrMapSize = arrayError("mapped region does not fit the requested length")
)
