package logging

import "fmt"
import log "github.com/cihub/seelog"
import "testing"

var appConfig = `
  <seelog type="sync" minlevel='%s'>
  <outputs formatid="ngram">
    <console />
  </outputs>
  <formats>
  <format id="ngram" format="ngram: [%%LEV] %%Msg%%n" />
  </formats>
  </seelog>
`

var config string

func SetupLogging(verbosity int) {

	switch verbosity {
	case 0:
		fallthrough
	case 1:
		config = fmt.Sprintf(appConfig, "warn")
	case 2:
		config = fmt.Sprintf(appConfig, "info")
	case 3:
		fallthrough
	default:
		config = fmt.Sprintf(appConfig, "trace")
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(config))

	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}

func SetupTestLogging() {
	var appConfig = `
  <seelog type="sync" minlevel='%s'>
  <outputs formatid="ngram">
    <filter levels="critical,error,warn,info">
      <console formatid="ngram" />
    </filter>
    <filter levels="debug">
      <console formatid="debug" />
    </filter>
  </outputs>
  <formats>
  <format id="ngram" format="test: [%%LEV] %%Msg%%n" />
  <format id="debug" format="test: [%%LEV] %%Func :: %%Msg%%n" />
  </formats>
  </seelog>
`

	var config string
	if testing.Verbose() {
		config = fmt.Sprintf(appConfig, "debug")
	} else {
		config = fmt.Sprintf(appConfig, "warn")
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(config))

	if err != nil {
		fmt.Println(err)
		return
	}

	log.ReplaceLogger(logger)
}
