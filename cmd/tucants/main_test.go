package main

import "testing"

func TestValidateFlagsAcceptsShortName(t *testing.T) {
	if errs := validateFlags("croatoan"); errs.ErrorOrNil() != nil {
		t.Errorf("validateFlags(short name) = %v, want nil", errs.ErrorOrNil())
	}
}

func TestValidateFlagsRejectsLongName(t *testing.T) {
	if errs := validateFlags("this-name-is-far-too-long"); errs.ErrorOrNil() == nil {
		t.Error("validateFlags(long name) should report an error")
	}
}
