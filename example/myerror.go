package main

//go:generate errctx generate -t MyError .

// MyError is the closed set of failures checkValue can report.
//
//errctx:context "Custom context: {0}"
type MyError interface {
	error
	isMyError()
}

// Error1 is reported for input 1.
type Error1 struct{}

func (Error1) Error() string { return "Error 1" }
func (Error1) isMyError()    {}

// Error2 is reported for input 2.
type Error2 struct{}

func (Error2) Error() string { return "Error 2" }
func (Error2) isMyError()    {}

// Error3 is reported for any other unlucky input.
type Error3 struct{}

func (Error3) Error() string { return "Error 3" }
func (Error3) isMyError()    {}

func checkValue(n int) error {
	switch n {
	case 42:
		return nil
	case 1:
		return Error1{}
	case 2:
		return Error2{}
	}

	return Error3{}
}
