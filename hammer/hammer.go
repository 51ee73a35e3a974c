package hammer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/ipchama/dstorm/config"
	"github.com/ipchama/dstorm/generator"
	"github.com/ipchama/dstorm/socketeer"
	"github.com/ipchama/dstorm/stats"

	"github.com/corneldamian/httpway"
)

type Hammer struct {
	options          *config.DhcpV4Options
	socketeerOptions *config.SocketeerOptions

	logChannel   chan string
	statsChannel chan string
	errorChannel chan error

	output io.Writer
	dial   generator.Dialer

	pool       *generator.Pool
	counter    *stats.Counter
	reporter   *stats.Reporter
	stopSignal *generator.StopSignal
	workers    []*generator.Worker

	apiAddress string
	apiPort    int
	apiServer  *httpway.Server
}

func New(so *config.SocketeerOptions, o *config.DhcpV4Options) *Hammer {

	h := Hammer{
		options:          o,
		socketeerOptions: so,
		logChannel:       make(chan string, 1000),
		statsChannel:     make(chan string, 1000),
		errorChannel:     make(chan error, 1000),
		output:           os.Stdout,
		stopSignal:       generator.NewStopSignal(),
	}

	h.dial = h.dialBroadcast

	return &h
}

// SetDialer replaces the broadcast socket used by every worker. Must be called
// before Init.
func (h *Hammer) SetDialer(d generator.Dialer) {
	h.dial = d
}

// SetOutput sets where report lines go. Defaults to stdout.
func (h *Hammer) SetOutput(w io.Writer) {
	h.output = w
}

func (h *Hammer) dialBroadcast() (generator.Sender, error) {
	s := socketeer.NewBroadcastSocketeer(h.socketeerOptions)

	if err := s.Init(); err != nil {
		return nil, err
	}

	return s, nil
}

func (h *Hammer) Init(apiAddress string, apiPort int) error {

	var err error

	log.SetFlags(log.LstdFlags | log.LUTC)

	if h.options.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", h.options.Workers)
	}

	if h.pool, err = generator.NewPool(h.options.PoolSize); err != nil {
		return err
	}

	seed := time.Now().UnixNano()

	h.pool.Initialize(generator.NewIdentity(seed))

	if err = checkRecord(h.pool.At(0)); err != nil {
		return err
	}

	h.counter = &stats.Counter{}
	h.reporter = stats.NewReporter(h.counter, time.Duration(h.options.StatsRate)*time.Second, h.addStats, h.addError)

	h.workers = make([]*generator.Worker, 0, h.options.Workers)

	for i := 0; i < h.options.Workers; i++ {
		w, err := generator.NewWorker(generator.WorkerInitParams{
			Id:              i,
			Pool:            h.pool,
			Counter:         h.counter,
			StopSignal:      h.stopSignal,
			Dial:            h.dial,
			Seed:            seed + int64(i) + 1,
			RefreshInterval: h.options.RefreshInterval,
			FlushBatch:      h.options.FlushBatch,
			LogFunc:         h.addLog,
			ErrFunc:         h.addError,
		})

		if err != nil {
			return err
		}

		h.workers = append(h.workers, w)
	}

	h.apiAddress = apiAddress
	h.apiPort = apiPort

	return nil
}

// checkRecord makes sure the pool holds something a DHCP server will parse
// before we start throwing it at the network.
func checkRecord(r *generator.Record) error {
	d, err := r.Decode()

	if err != nil {
		return fmt.Errorf("pool record does not parse: %w", err)
	}

	if d.MessageType() != dhcpv4.MessageTypeDiscover || !d.IsBroadcast() {
		return errors.New("pool record is not a broadcast DHCPDISCOVER")
	}

	return nil
}

func (h *Hammer) Run() error {

	var wg sync.WaitGroup
	var readers sync.WaitGroup

	log.Print("INFO: Starting error channel reader.")
	readers.Add(1)
	go func() {
		for err := range h.errorChannel {
			log.Print("ERROR: " + err.Error())
		}
		readers.Done()
	}()

	log.Print("INFO: Starting log channel reader.")
	readers.Add(1)
	go func() {
		for msg := range h.logChannel {
			log.Print("INFO: " + msg)
		}
		readers.Done()
	}()

	log.Print("INFO: Starting stats channel reader.")
	readers.Add(1)
	go func() {
		for msg := range h.statsChannel {
			fmt.Fprintln(h.output, msg)
		}
		readers.Done()
	}()

	log.Print("INFO: Starting stats.")
	wg.Add(1)
	go func() {
		h.reporter.Run(h.stopSignal.Done())
		wg.Done()
		log.Print("INFO: Stopped stats.")
	}()

	log.Printf("INFO: Starting %d workers.", len(h.workers))
	for _, w := range h.workers {
		wg.Add(1)
		go func(w *generator.Worker) {
			w.Run()
			wg.Done()
		}(w)
	}

	if h.options.MaxLifetime > 0 {
		timer := time.AfterFunc(time.Duration(h.options.MaxLifetime)*time.Second, h.Stop)
		defer timer.Stop()
	}

	if h.apiPort > 0 {
		log.Print("INFO: Starting API server.")
		wg.Add(1)
		go func() {
			h.runApiServer()
			wg.Done()
			log.Print("INFO: Stopped API server.")
		}()
	}

	wg.Wait()
	log.Print("INFO: Stopped workers.")

	// Nothing sends on these any more.
	close(h.errorChannel)
	close(h.logChannel)
	close(h.statsChannel)

	readers.Wait()

	return nil
}

func (h *Hammer) addError(e error) bool {
	select {
	case h.errorChannel <- e:
		return true
	default:
	}
	return false
}

func (h *Hammer) addLog(s string) bool {
	select {
	case h.logChannel <- s:
		return true
	default:
	}

	return false
}

func (h *Hammer) addStats(s string) bool {
	select {
	case h.statsChannel <- s:
		return true
	default:
	}

	return false
}

// Stop asks every worker, the reporter and the API server to finish. Safe to
// call more than once and from any goroutine; Run does the joining.
func (h *Hammer) Stop() {
	if h.stopSignal.Stop() {
		log.Print("INFO: Stop requested, waiting for workers.")
	}
}
