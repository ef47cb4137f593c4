package main

import log "github.com/cihub/seelog"
import "github.com/cwacek/ngramengine/cli/actions"

func main() {
	defer log.Flush()
	actions.Execute()
}
