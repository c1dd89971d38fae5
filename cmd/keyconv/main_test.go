package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestRun_singleKey(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-key", "22222-22222-22222-22222"},
		strings.NewReader(""), &stdout, &stderr)
	w.As(stderr.String()).ShouldBeEqual(code, 0)
	w.ShouldBeEqual(stdout.String(),
		"ECDATA: 33333333339999944444\n"+
			"PID2: 0000000-0000000-0000000-0000000-000\n")
}

func TestRun_singleKeyTrimmed(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-key", "  33333333339999944444\n"},
		strings.NewReader(""), &stdout, &stderr)
	w.As(stderr.String()).ShouldBeEqual(code, 0)
	w.ShouldBeEqual(stdout.String(),
		"PID: 22222-22222-22222-22222\n"+
			"PID2: 0000000-0000000-0000000-0000000-000\n")
}

func TestRun_singleBadKey(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-key", "not a key"},
		strings.NewReader(""), &stdout, &stderr)
	w.ShouldBeEqual(code, 1)
	w.ShouldBeEqual(stdout.String(), "")
	w.ShouldContainStr(stderr.String(), "unrecognized key shape")
}

func TestRun_pipe(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	input := "22222-22222-22222-22222\n" +
		"\n" +
		"  33333333339999944444  \n"
	code := run(nil, strings.NewReader(input), &stdout, &stderr)
	w.As(stderr.String()).ShouldBeEqual(code, 0)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	w.StopOnMismatch().ShouldHaveLength(lines, 2)
	w.ShouldBeEqual(lines[0],
		"22222-22222-22222-22222 => ECDATA 33333333339999944444, "+
			"PID2 0000000-0000000-0000000-0000000-000")
	w.ShouldBeEqual(lines[1],
		"33333333339999944444 => PID 22222-22222-22222-22222, "+
			"PID2 0000000-0000000-0000000-0000000-000")
}

func TestRun_pipeReportsBadLines(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	input := "22222-22222-22222-22222\n" +
		"garbage\n" +
		"33333333339999944444\n"
	code := run(nil, strings.NewReader(input), &stdout, &stderr)
	w.ShouldBeEqual(code, 1)

	// good lines still convert
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	w.ShouldHaveLength(lines, 2)
	w.ShouldContainStr(stderr.String(), "line 2:")
	w.ShouldContainStr(stderr.String(), "1 of 3 keys failed")
}

func TestRun_pipeEmptyInput(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run(nil, strings.NewReader("\n  \n"), &stdout, &stderr)
	w.As(stderr.String()).ShouldBeEqual(code, 0)
	w.ShouldBeEqual(stdout.String(), "")
}

func TestRun_rejectsPositionalArgs(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"AAAAA-AAAAA-AAAAA-AAAAA"},
		strings.NewReader(""), &stdout, &stderr)
	w.ShouldBeEqual(code, 2)
	w.ShouldContainStr(stderr.String(), "unexpected arguments")
}

func TestRun_rejectsUnknownFlag(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr)
	w.ShouldBeEqual(code, 2)
}

func TestRun_verboseLogging(t *testing.T) {
	w := expect.WrapT(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-v", "-key", "22222-22222-22222-22222"},
		strings.NewReader(""), &stdout, &stderr)
	w.ShouldBeEqual(code, 0)
	w.ShouldContainStr(stdout.String(), "ECDATA: 33333333339999944444")
}
