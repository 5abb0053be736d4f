package main

import (
	"github.com/rise-and-shine/disposeguard/cfgloader"
	"github.com/rise-and-shine/disposeguard/guard"
	"github.com/rise-and-shine/disposeguard/logger"
)

type Config struct {
	Logger logger.Config `yaml:"logger"`
	Step   int           `yaml:"step"   validate:"gt=0" default:"1"`
}

// Counter is a sample resource whose methods stop working once disposed.
type Counter struct {
	guard.Flag

	value int
}

func (c *Counter) Increment(n int) (int, error) {
	c.value += n
	return c.value, nil
}

func (c *Counter) Reset() {
	c.value = 0
}

func main() {
	cfg := cfgloader.MustLoad[Config]()
	logger.SetGlobal(cfg.Logger)
	defer func() { _ = logger.Sync() }()

	log := logger.Named("demo")

	c := &Counter{}
	increment := guard.Method1("Increment", (*Counter).Increment)
	reset, _ := guard.Create("Reset", (*Counter).Reset).(func(*Counter))

	v, err := increment(c, cfg.Step)
	if err != nil {
		log.Fatalx(err)
	}
	log.With("value", v).Info("incremented")

	reset(c)
	log.With("value", c.value).Info("reset")

	c.Dispose()
	log.With("disposed", c.IsDisposed()).Info("disposed counter")

	if _, err = increment(c, cfg.Step); err != nil {
		log.Warnx(err)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok && guard.IsDisposedError(e) {
					log.Warnx(e)
					return
				}
				panic(r)
			}
		}()
		reset(c)
	}()
}
