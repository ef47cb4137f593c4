package ngrams

import "fmt"
import "regexp"

const (
	DefaultN            = 2
	DefaultSeparator    = " "
	DefaultSplitPattern = `\s+`
)

// Strategy names accepted by Config.
const (
	StrategyDirect  = "direct"
	StrategyShifted = "shifted"
)

// Config is the full configuration surface of the pipeline.
type Config struct {
	// Window size. Must be positive.
	N int

	// Token-join delimiter. Any string is legal, including the
	// empty one; DefaultConfig sets a single space.
	Separator string

	// Pattern defining token boundaries. Empty means the default
	// whitespace-run pattern.
	SplitPattern string

	// Window strategy to run. Empty means direct.
	Strategy string

	// Number of documents processed concurrently. Values <= 1
	// mean sequential processing.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		N:            DefaultN,
		Separator:    DefaultSeparator,
		SplitPattern: DefaultSplitPattern,
		Strategy:     StrategyDirect,
		Workers:      1,
	}
}

func (c Config) Validate() error {

	if c.N < 1 {
		return NewInvalidConfigError(
			fmt.Sprintf("window size must be positive, have %d", c.N))
	}

	switch c.Strategy {
	case "", StrategyDirect, StrategyShifted:
	default:
		return NewInvalidConfigError("unknown window strategy: " + c.Strategy)
	}

	if c.SplitPattern != "" {
		if _, err := regexp.Compile(c.SplitPattern); err != nil {
			return NewInvalidConfigError(
				"bad token boundary pattern: " + err.Error())
		}
	}

	return nil
}
