package envy_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quornian/envy/internal/config"
	"github.com/quornian/envy/internal/envy"
	"github.com/quornian/envy/internal/model"
	"github.com/quornian/envy/internal/splitter"
	"github.com/quornian/envy/internal/system/mocks"
)

const (
	bold  = "\x1b[1m"
	rst   = "\x1b[0m"
	sep   = "\x1b[38;5;242m"
	mat   = "\x1b[1;33m"
	unm   = "\x1b[2m"
	mis   = "\x1b[31m"
	spe   = "\x1b[36m"
	purpl = "\x1b[35m"
)

var (
	errMockWriteError = errors.New("write error")
)

type errorWriter struct{}

func (e *errorWriter) Read([]byte) (int, error) {
	return 0, io.EOF
}

func (e *errorWriter) Write([]byte) (int, error) {
	return 0, errMockWriteError
}

type mockExistsCall struct {
	path   string
	exists bool
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestEnvy_PrintVariables(t *testing.T) {
	cases := map[string]struct {
		cfg                config.Config
		stdOut             io.ReadWriter
		callSnapshot       bool
		mockSnapshot       map[string]string
		callListSeparators bool
		callPathSeparator  bool
		callIsTerminal     bool
		mockIsTerminal     bool
		mockExistsCalls    []mockExistsCall
		expectedErr        error
		expectedStdOut     string
		expectedStdErr     string
	}{
		"success-missing-paths": {
			cfg: config.Config{
				Pattern:    "*",
				CheckPaths: true,
				Color:      model.ColorAlways,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"PATH": "/bin:/nope"},
			callListSeparators: true,
			callPathSeparator:  true,
			mockExistsCalls: []mockExistsCall{
				{path: "/bin", exists: true},
				{path: "/nope", exists: false},
			},
			expectedStdOut: bold + "PATH" + rst + sep + "=" + rst + "\n" +
				"  /bin" + rst + sep + ":" + rst + "\n" +
				"  " + mis + "/nope" + rst + sep + rst + "\n" +
				"\n",
		},
		"success-missing-paths-no-color": {
			cfg: config.Config{
				Pattern:    "*",
				CheckPaths: true,
				Color:      model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"PATH": "/bin:/nope"},
			callListSeparators: true,
			callPathSeparator:  true,
			mockExistsCalls: []mockExistsCall{
				{path: "/bin", exists: true},
				{path: "/nope", exists: false},
			},
			expectedStdOut: "PATH=\n" +
				"  /bin:\n" +
				" !/nope\n" +
				"\n",
		},
		"success-path-check-skips-values-without-paths": {
			cfg: config.Config{
				CheckPaths: true,
				Color:      model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"LANG": "en_US.UTF-8"},
			callListSeparators: true,
			callPathSeparator:  true,
			expectedStdOut:     "LANG=\n  en_US.UTF-8\n\n",
		},
		"success-sorted-by-name-auto-color-not-terminal": {
			cfg: config.Config{
				Color: model.ColorAuto,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"B": "2", "A": "1", "C": "x,y"},
			callListSeparators: true,
			callIsTerminal:     true,
			mockIsTerminal:     false,
			expectedStdOut: "A=\n  1\n\n" +
				"B=\n  2\n\n" +
				"C=\n  x,\n  y\n\n",
		},
		"success-auto-color-terminal": {
			cfg: config.Config{
				Pattern: "HOME",
				Color:   model.ColorAuto,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"HOME": "/home/bob", "HOMEDIR": "/home"},
			callListSeparators: true,
			callIsTerminal:     true,
			mockIsTerminal:     true,
			expectedStdOut: bold + "HOME" + rst + sep + "=" + rst + "\n" +
				"  /home/bob" + rst + sep + rst + "\n" +
				"\n",
		},
		"success-variable-without-search-match-excluded": {
			cfg: config.Config{
				Pattern: "HOME",
				Search:  "/usr",
				Color:   model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"HOME": "/home/bob", "USR": "/usr"},
			callListSeparators: true,
			expectedStdOut:     "",
		},
		"success-search-highlight-missing-precedence": {
			cfg: config.Config{
				Search:     "nope",
				CheckPaths: true,
				Color:      model.ColorAlways,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"PATH": "/bin:/nope"},
			callListSeparators: true,
			callPathSeparator:  true,
			mockExistsCalls: []mockExistsCall{
				{path: "/bin", exists: true},
				{path: "/nope", exists: false},
			},
			expectedStdOut: bold + "PATH" + rst + sep + "=" + rst + "\n" +
				"  " + unm + "/bin" + rst + sep + ":" + rst + "\n" +
				"  " + mis + "/" + mat + "nope" + rst + mis + rst + sep + rst + "\n" +
				"\n",
		},
		"success-only-matching": {
			cfg: config.Config{
				Pattern:      "^PATH$",
				Regex:        true,
				Search:       "usr",
				OnlyMatching: true,
				Color:        model.ColorNever,
			},
			callSnapshot: true,
			mockSnapshot: map[string]string{
				"PATH":   "/bin:/sbin:/usr/bin:/opt/a:/opt/b:/usr/local/bin",
				"GOPATH": "/usr/go",
			},
			callListSeparators: true,
			expectedStdOut: "PATH=\n" +
				"  ...\n" +
				"* /usr/bin:\n" +
				"  ...\n" +
				"* /usr/local/bin\n" +
				"\n",
		},
		"success-search-without-only-matching": {
			cfg: config.Config{
				Search: "usr",
				Color:  model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"PATH": "/bin:/usr/bin"},
			callListSeparators: true,
			expectedStdOut:     "PATH=\n  /bin:\n* /usr/bin\n\n",
		},
		"success-regex-ignore-case": {
			cfg: config.Config{
				Pattern:    "path",
				Regex:      true,
				IgnoreCase: true,
				Color:      model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"PATH": "/bin", "HOME": "/home/bob"},
			callListSeparators: true,
			expectedStdOut:     "PATH=\n  /bin\n\n",
		},
		"success-separators-override-and-escapes": {
			cfg: config.Config{
				Separators: ";",
				Color:      model.ColorAlways,
			},
			callSnapshot: true,
			mockSnapshot: map[string]string{"PS1": "\t$ \n"},
			expectedStdOut: bold + "PS1" + rst + sep + "=" + rst + "\n" +
				"  " + spe + `\t` + rst + "$ " + spe + `\n` + rst + rst + sep + rst + "\n" +
				"\n",
		},
		"success-empty-value": {
			cfg: config.Config{
				Color: model.ColorNever,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"EMPTY": ""},
			callListSeparators: true,
			expectedStdOut:     "EMPTY=\n  \n\n",
		},
		"success-color-overrides": {
			cfg: config.Config{
				Colors: "var=35:sep=:bogus",
				Color:  model.ColorAlways,
			},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"A": "1,2"},
			callListSeparators: true,
			expectedStdOut: purpl + "A" + rst + "=" + rst + "\n" +
				"  1" + rst + "," + rst + "\n" +
				"  2" + rst + rst + "\n" +
				"\n",
		},
		"error-invalid-name-pattern": {
			cfg: config.Config{
				Pattern: "(",
				Regex:   true,
			},
			expectedErr:    model.ErrInvalidPattern,
			expectedStdErr: "❌ cannot use name pattern \"(\": invalid pattern: error parsing regexp: missing closing ): `(`\n",
		},
		"error-invalid-search-pattern": {
			cfg: config.Config{
				Search: "[",
			},
			expectedErr:    model.ErrInvalidPattern,
			expectedStdErr: "❌ cannot use search pattern \"[\": invalid pattern: error parsing regexp: missing closing ]: `[`\n",
		},
		"error-write-error": {
			cfg: config.Config{
				Color: model.ColorNever,
			},
			stdOut:             &errorWriter{},
			callSnapshot:       true,
			mockSnapshot:       map[string]string{"A": "1"},
			callListSeparators: true,
			expectedErr:        errMockWriteError,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := mocks.NewEnvironment(t)
			fs := mocks.NewFileSystem(t)
			rt := mocks.NewRuntime(t)
			terminal := mocks.NewTerminal(t)

			stdOut := tc.stdOut
			if stdOut == nil {
				stdOut = &bytes.Buffer{}
			}
			stdErr := &bytes.Buffer{}

			if tc.callSnapshot {
				env.EXPECT().Snapshot().
					Return(tc.mockSnapshot).
					Once()
			}

			if tc.callListSeparators {
				rt.EXPECT().ListSeparators().
					Return(":,").
					Once()
			}

			if tc.callPathSeparator {
				rt.EXPECT().PathSeparator().
					Return('/').
					Once()
			}

			if tc.callIsTerminal {
				terminal.EXPECT().IsTerminal(stdOut).
					Return(tc.mockIsTerminal).
					Once()
			}

			for _, call := range tc.mockExistsCalls {
				fs.EXPECT().Exists(call.path).
					Return(call.exists).
					Once()
			}

			app := envy.NewEnvy(env, fs, rt, terminal, stdErr, stdOut)
			err := app.PrintVariables(tc.cfg)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}

			if buf, ok := stdOut.(*bytes.Buffer); ok {
				assert.Equal(t, tc.expectedStdOut, buf.String())
			}
			assert.Equal(t, tc.expectedStdErr, stdErr.String())
		})
	}
}

func TestEnvy_Compile_InvalidSeparators(t *testing.T) {
	stdErr := &bytes.Buffer{}

	app := envy.NewEnvy(
		mocks.NewEnvironment(t),
		mocks.NewFileSystem(t),
		mocks.NewRuntime(t),
		mocks.NewTerminal(t),
		stdErr,
		&bytes.Buffer{},
	)

	pipeline, err := app.Compile(config.Config{Separators: "\xff", Color: model.ColorNever})
	assert.Nil(t, pipeline)
	require.ErrorIs(t, err, splitter.ErrInvalidSeparators)
	assert.True(t, strings.HasPrefix(stdErr.String(), `❌ cannot use separators "\xff": invalid separators`))
}

func TestPipeline_Process_OnlyMatchingElidesRun(t *testing.T) {
	rt := mocks.NewRuntime(t)
	rt.EXPECT().ListSeparators().Return(":,").Once()

	stdOut := &bytes.Buffer{}
	app := envy.NewEnvy(
		mocks.NewEnvironment(t),
		mocks.NewFileSystem(t),
		rt,
		mocks.NewTerminal(t),
		&bytes.Buffer{},
		stdOut,
	)

	pipeline, err := app.Compile(config.Config{
		Search:       "zzz",
		OnlyMatching: true,
		Color:        model.ColorNever,
	})
	require.NoError(t, err)

	v, ok := pipeline.Process("LIST", "a:b:c:d")
	assert.False(t, ok)
	require.Len(t, v.Lines, 1)
	assert.True(t, v.Lines[0].Elided)

	require.NoError(t, pipeline.Write(v))
	assert.Equal(t, 1, strings.Count(stdOut.String(), "..."))
	assert.Equal(t, "LIST=\n  ...\n\n", stdOut.String())
}

func TestPipeline_Process_ElisionResetsPerVariable(t *testing.T) {
	rt := mocks.NewRuntime(t)
	rt.EXPECT().ListSeparators().Return(":,").Once()

	app := envy.NewEnvy(
		mocks.NewEnvironment(t),
		mocks.NewFileSystem(t),
		rt,
		mocks.NewTerminal(t),
		&bytes.Buffer{},
		&bytes.Buffer{},
	)

	pipeline, err := app.Compile(config.Config{
		Search:       "x",
		OnlyMatching: true,
		Color:        model.ColorNever,
	})
	require.NoError(t, err)

	first, ok := pipeline.Process("A", "x:a:b")
	assert.True(t, ok)
	require.Len(t, first.Lines, 2)
	assert.True(t, first.Lines[1].Elided)

	second, ok := pipeline.Process("B", "c:x")
	assert.True(t, ok)
	require.Len(t, second.Lines, 2)
	assert.True(t, second.Lines[0].Elided)
	assert.False(t, second.Lines[1].Elided)
}

func TestPipeline_Includes(t *testing.T) {
	rt := mocks.NewRuntime(t)
	rt.EXPECT().ListSeparators().Return(":,").Once()

	app := envy.NewEnvy(
		mocks.NewEnvironment(t),
		mocks.NewFileSystem(t),
		rt,
		mocks.NewTerminal(t),
		&bytes.Buffer{},
		&bytes.Buffer{},
	)

	pipeline, err := app.Compile(config.Config{Pattern: "FOO*", Color: model.ColorNever})
	require.NoError(t, err)

	assert.True(t, pipeline.Includes("FOOBAR"))
	assert.True(t, pipeline.Includes("FOO"))
	assert.False(t, pipeline.Includes("BARFOO"))
}
