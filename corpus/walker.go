package corpus

import "os"
import "path/filepath"
import "regexp"
import log "github.com/cihub/seelog"

/* A DocWalker reads every regular file under a directory whose name
matches a pattern, and emits each one as a Document. The file name is
the document identifier. Files are read by per-file workers, so the
emission order is arbitrary. */
type DocWalker struct {
	output       chan Document
	workers      chan string
	worker_count int
	filepattern  string
}

func (d *DocWalker) WalkDocuments(docroot, pattern string, out chan Document) {

	d.output = out
	d.workers = make(chan string)
	d.worker_count = 0
	d.filepattern = pattern

	log.Infof("Reading documents matching %s from: %s", pattern, docroot)
	filepath.Walk(docroot, d.read_file)
	if d.worker_count == 0 {
		close(d.output)
		return
	}

	go d.signal_when_done()
}

func (d *DocWalker) signal_when_done() {
	for file := range d.workers {
		d.worker_count -= 1
		log.Infof("Worker for %s done. Waiting for %d workers.", file, d.worker_count)
		if d.worker_count <= 0 {
			close(d.output)
			return
		}
	}
}

func (d *DocWalker) read_file(path string, info os.FileInfo, err error) error {

	if err != nil {
		log.Criticalf("Error walking documents at %s: %v", path, err)
		return nil
	}

	if !info.Mode().IsRegular() {
		return nil
	}

	file := filepath.Base(path)

	log.Debugf("Trying file %s", file)

	matched, merr := regexp.MatchString(d.filepattern, file)
	log.Debugf("File match: %v, error: %v", matched, merr)
	if !matched || merr != nil {
		return nil
	}

	go func(path, name string) {
		content, rerr := os.ReadFile(path)
		if rerr != nil {
			log.Criticalf("Error reading %s: %v", path, rerr)
		} else {
			d.output <- Document{Id: name, Text: string(content)}
		}
		d.workers <- name
	}(path, file)

	d.worker_count += 1
	return nil
}
