package intent

import (
	"fmt"
	"strings"
)

// Flags is the raw command line as parsed by the CLI layer. A value flag is
// present when its *Set field is true, even if its value is empty.
type Flags struct {
	Path      bool
	Configure bool
	Clean     bool
	Reset     bool
	Debug     bool
	Link      bool
	Run       bool

	Profile    string
	ProfileSet bool
	Test       string
	TestSet    bool
	Build      string
	BuildSet   bool

	// Positional arguments; owned by -l when present, otherwise by -r.
	Args []string
}

// Decode picks the single operation an invocation asks for.
//
// When several operation flags are present the first one in this order wins:
// -p, -q, -c, -i, -d, -l, -v, -t, -b, -r. Positional arguments are checked
// against the flag that owns them even when a higher priority flag wins.
func Decode(f Flags) (Intent, error) {
	if err := checkArity(f); err != nil {
		return nil, err
	}

	switch {
	case f.Path:
		return ReportPath{}, nil
	case f.Configure:
		return Configure{}, nil
	case f.Clean:
		return Clean{}, nil
	case f.Reset:
		return Reset{}, nil
	case f.Debug:
		return Debugger{}, nil
	case f.Link:
		return Link{Base: f.Args[0], Source: f.Args[1], Destination: f.Args[2]}, nil
	case f.ProfileSet:
		if strings.TrimSpace(f.Profile) == "" {
			return nil, fmt.Errorf("-v: a target is required")
		}
		return Profile{Target: f.Profile}, nil
	case f.TestSet:
		v, err := ParseVariant(f.Test)
		if err != nil {
			return nil, fmt.Errorf("-t: %w", err)
		}
		return Test{Variant: v}, nil
	case f.BuildSet:
		v, err := ParseVariant(f.Build)
		if err != nil {
			return nil, fmt.Errorf("-b: %w", err)
		}
		return Build{Variant: v}, nil
	case f.Run:
		r := Run{Variant: Release}
		if len(f.Args) > 0 {
			v, err := ParseVariant(f.Args[0])
			if err != nil {
				return nil, fmt.Errorf("-r: %w", err)
			}
			r.Variant = v
		}
		if len(f.Args) > 1 {
			r.Target = f.Args[1]
		}
		return r, nil
	}
	return None{}, nil
}

func checkArity(f Flags) error {
	n := len(f.Args)
	switch {
	case f.Link:
		if n != 3 {
			return fmt.Errorf("-l takes exactly 3 arguments (base, name, destination), got %d", n)
		}
	case f.Run:
		if n > 2 {
			return fmt.Errorf("-r takes at most 2 arguments (variant, target), got %d", n)
		}
	case n > 0:
		return fmt.Errorf("unexpected arguments: %q", f.Args)
	}
	return nil
}
