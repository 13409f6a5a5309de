package cli

import (
	"fmt"
	"strconv"

	"rotatemac/internal/config"
)

// slot is a flag value that may be assigned once per parse.
type slot struct {
	name string
	set  bool
}

func (s *slot) claim() error {
	if s.set {
		return fmt.Errorf("duplicated %s argument", s.name)
	}
	s.set = true
	return nil
}

type stringSlot struct {
	slot
	value string
}

func (s *stringSlot) Set(v string) error {
	if err := s.claim(); err != nil {
		return err
	}
	s.value = v
	return nil
}

func (s *stringSlot) String() string { return s.value }

type intSlot struct {
	slot
	value int
}

func (s *intSlot) Set(v string) error {
	if err := s.claim(); err != nil {
		return err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: expected an integer", s.name, v)
	}
	s.value = n
	return nil
}

func (s *intSlot) String() string { return strconv.Itoa(s.value) }

type boolSlot struct {
	slot
	value bool
}

func (s *boolSlot) Set(v string) error {
	if err := s.claim(); err != nil {
		return err
	}
	s.value = config.IsAffirmative(v)
	return nil
}

func (s *boolSlot) String() string { return strconv.FormatBool(s.value) }

func (s *boolSlot) IsBoolFlag() bool { return true }
