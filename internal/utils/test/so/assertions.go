package so

import (
	"github.com/smartystreets/assertions"
)

// set of assertions used by the profile and session tests
var (
	ShouldEqual               = assertions.ShouldEqual
	ShouldNotEqual            = assertions.ShouldNotEqual
	ShouldResemble            = assertions.ShouldResemble
	ShouldBeNil               = assertions.ShouldBeNil
	ShouldNotBeNil            = assertions.ShouldNotBeNil
	ShouldBeTrue              = assertions.ShouldBeTrue
	ShouldBeFalse             = assertions.ShouldBeFalse
	ShouldBeEmpty             = assertions.ShouldBeEmpty
	ShouldHaveLength          = assertions.ShouldHaveLength
	ShouldContain             = assertions.ShouldContain
	ShouldNotContain          = assertions.ShouldNotContain
	ShouldContainKey          = assertions.ShouldContainKey
	ShouldStartWith           = assertions.ShouldStartWith
	ShouldContainSubstring    = assertions.ShouldContainSubstring
	ShouldNotContainSubstring = assertions.ShouldNotContainSubstring
)
