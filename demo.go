package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/ringbuffer"
)

// runDemo exercises both containers directly and prints their contents to w.
func runDemo(logger *logrus.Logger, w io.Writer) error {
	err := ringDemo(logger, w)
	if err != nil {
		return fmt.Errorf("ring buffer demo: %w", err)
	}

	err = listDemo(logger, w)
	if err != nil {
		return fmt.Errorf("linked list demo: %w", err)
	}

	return nil
}

func ringDemo(logger *logrus.Logger, w io.Writer) error {
	rb, err := ringbuffer.New(100)
	if err != nil {
		return fmt.Errorf("allocate: %w", err)
	}
	logger.WithField("capacity", rb.Capacity()).Info("Allocated ring buffer")

	for i := range uint32(100) {
		err = rb.Add(i)
		if err != nil {
			return fmt.Errorf("add %d: %w", i, err)
		}
	}
	err = dumpRing(logger, rb, w)
	if err != nil {
		return err
	}

	for range 10 {
		v, err := rb.Remove()
		if err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		logger.WithField("value", v).Debug("Removed value")
	}
	err = dumpRing(logger, rb, w)
	if err != nil {
		return err
	}

	for i := range uint32(5) {
		err = rb.Add(i)
		if err != nil {
			return fmt.Errorf("add %d: %w", i, err)
		}
	}
	err = dumpRing(logger, rb, w)
	if err != nil {
		return err
	}

	err = rb.Destroy()
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	logger.Info("Destroyed ring buffer")
	return nil
}

func dumpRing(logger *logrus.Logger, rb *ringbuffer.RingBuffer, w io.Writer) error {
	_, err := rb.WriteTo(w)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	size, err := rb.Size()
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"size":  size,
		"state": rb.State(),
	}).Info("Dumped ring buffer")
	return nil
}

func listDemo(logger *logrus.Logger, w io.Writer) error {
	l := linkedlist.New()
	inserts := []struct {
		value uint32
		index int
	}{
		{17, 0},
		{100, 1},
		{117, 0},
		{1, 3},
	}
	for _, in := range inserts {
		err := l.Insert(in.value, in.index)
		if err != nil {
			return fmt.Errorf("insert %d at %d: %w", in.value, in.index, err)
		}
	}
	_, err := fmt.Fprintf(w, "List: %v\n", l.Values())
	if err != nil {
		return fmt.Errorf("print list: %w", err)
	}

	idx, err := l.Search(100)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"value": 100,
		"index": idx,
	}).Info("Found value in list")

	for _, index := range []int{0, 1} {
		err = l.Remove(index)
		if err != nil {
			return fmt.Errorf("remove at %d: %w", index, err)
		}
	}
	_, err = fmt.Fprintf(w, "List: %v\n", l.Values())
	if err != nil {
		return fmt.Errorf("print list: %w", err)
	}

	err = l.Destroy()
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	logger.WithField("size", l.Size()).Info("Destroyed list")
	return nil
}
