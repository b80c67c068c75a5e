package structure

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arloliu/mmtf/errs"
)

// MaxSupportedMajor is the highest mmtfVersion major component this
// package decodes. Minor versions are accepted regardless of value, per
// the original decoder's isVersionSupported: only the major component
// gates compatibility.
const MaxSupportedMajor = 1

// checkVersion rejects a version string whose major component exceeds
// MaxSupportedMajor.
func checkVersion(version string) error {
	major, _, ok := strings.Cut(version, ".")
	if !ok {
		major = version
	}

	n, err := strconv.Atoi(major)
	if err != nil {
		return &errs.UnsupportedVersion{Found: version, MaxSupported: MaxSupportedMajor}
	}

	if n > MaxSupportedMajor {
		return &errs.UnsupportedVersion{Found: version, MaxSupported: MaxSupportedMajor}
	}

	return nil
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func checkDate(key, value string) error {
	if value == "" {
		return nil
	}

	if !dateRe.MatchString(value) {
		return &errs.InvalidDateFormat{Key: key, Value: value}
	}

	return nil
}
