package lint

import "fmt"

// Summary totals a run.
type Summary struct {
	Files    int
	Clean    int
	Problems int
	Failed   int
}

// Summarize counts files, clean files, problems and load failures.
func Summarize(reports []Report) Summary {
	s := Summary{Files: len(reports)}
	for _, r := range reports {
		switch {
		case r.Err != nil:
			s.Failed++
		case len(r.Messages) == 0:
			s.Clean++
		default:
			s.Problems += len(r.Messages)
		}
	}
	return s
}

// OK reports whether every file loaded and passed.
func (s Summary) OK() bool {
	return s.Problems == 0 && s.Failed == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files checked, %d clean, %d problems, %d failed to load",
		s.Files, s.Clean, s.Problems, s.Failed)
}
