package engine

import "encoding/json"
import "fmt"
import log "github.com/cihub/seelog"
import zmq "github.com/pebbe/zmq4"
import "github.com/cwacek/ngramengine/corpus"
import "github.com/cwacek/ngramengine/ngrams"

/* Extract runs the full pipeline for one request. Every request
builds its own processor, so requests are independent and a bad
configuration poisons nothing but its own response. */
func Extract(req *Request) *Response {

	conf := ngrams.DefaultConfig()
	if req.N != 0 {
		conf.N = req.N
	}
	if req.Separator != "" {
		conf.Separator = req.Separator
	}
	conf.Strategy = req.Strategy

	proc, err := ngrams.NewBatchProcessor(conf)
	if err != nil {
		return ErrorResponse(err.Error())
	}

	if len(req.Docs) == 0 {
		return NewResponse(proc.ProcessText(req.Text))
	}

	idField := req.IdField
	if idField == "" {
		idField = corpus.DefaultIdField
	}
	textField := req.TextField
	if textField == "" {
		textField = corpus.DefaultTextField
	}

	docs, err := corpus.FromMaps(req.Docs, idField, textField)
	if err != nil {
		return ErrorResponse(err.Error())
	}

	return NewResponse(proc.Process(docs))
}

// A ZeroMQEngine answers extraction requests over a REP socket, one
// JSON request per message.
type ZeroMQEngine struct {
	port    int
	control chan int
}

func (engine *ZeroMQEngine) Init(port int) error {
	engine.port = port
	engine.control = make(chan int, 1)
	return nil
}

func (engine *ZeroMQEngine) Stop() {
	engine.control <- 1
}

func (engine *ZeroMQEngine) Start() error {
	var (
		msg    []byte
		e      error
		socket *zmq.Socket
		req    Request
		resp   *Response
	)

	if socket, e = zmq.NewSocket(zmq.REP); e != nil {
		return e
	}
	defer socket.Close()

	log.Infof("Starting ZeroMQEngine on port %d", engine.port)
	if e = socket.Bind(fmt.Sprintf("tcp://*:%d", engine.port)); e != nil {
		return e
	}

	for {
		select {
		case <-engine.control:
			log.Infof("Shutting down.")
			return nil
		default:
		}

		log.Debugf("ZeroMQEngine waiting for messages")
		if msg, e = socket.RecvBytes(0); e != nil {
			return e
		}

		log.Infof("Received %s", msg)

		req = Request{}
		if e = json.Unmarshal(msg, &req); e != nil {
			log.Errorf("Error decoding JSON: %v", e)
			resp = ErrorResponse("bad request: " + e.Error())
		} else {
			resp = Extract(&req)
		}

		if msg, e = json.Marshal(resp); e != nil {
			return e
		}

		socket.SendBytes(msg, 0)
	}
}
