// SPDX-License-Identifier: EPL-2.0

// Command tapedec converts WAV captures of mini-cassette tapes into
// SIMH-TAP containers with a bitstore metadata sidecar.
//
// Usage:
//
//	tapedec [-debug] [-params file.yaml] capture.wav [capture2.wav ...]
//
// For each input capture the command writes <input>.TAP and
// <input>.TAP.meta next to the input file. With -debug it also writes
// one <input>.<track>.snd_ trace file per audio track, one line per
// edge the synchronizer saw. A capture where no track yields records
// writes nothing and does not fail the run; blank tapes are expected
// in a batch sweep.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/tapedec"
	"github.com/ik5/tapedec/audio"
	"github.com/ik5/tapedec/decode"
	"github.com/ik5/tapedec/formats/wav"
	"github.com/ik5/tapedec/record"
	"github.com/ik5/tapedec/tap"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tapedec: ")

	debug := flag.Bool("debug", false, "write per-track edge trace files")
	paramsPath := flag.String("params", "", "YAML file overriding decoder parameters")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(),
			"usage: tapedec [-debug] [-params file.yaml] capture.wav [capture2.wav ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	params := decode.DefaultParams()
	if *paramsPath != "" {
		var err error
		params, err = decode.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("params: %v", err)
		}
	}

	// Container decoders are resolved by file extension.
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})

	failed := false
	for _, path := range flag.Args() {
		if err := processFile(reg, path, params, *debug); err != nil {
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func processFile(reg *audio.Registry, path string, params decode.Params, debug bool) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	dec, ok := reg.Get(ext)
	if !ok {
		return fmt.Errorf("unsupported container format %q", ext)
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return err
	}
	defer src.Close()

	var tracerFor tapedec.TracerFor
	var traces []*traceFile
	if debug {
		tracerFor = func(track int) decode.Tracer {
			tf, err := newTraceFile(fmt.Sprintf("%s.%d.snd_", path, track))
			if err != nil {
				log.Printf("%s: trace disabled for track %d: %v", path, track, err)
				return nil
			}
			traces = append(traces, tf)
			return tf
		}
	}

	result, err := tapedec.DecodeSource(src, params, tracerFor)
	for _, tf := range traces {
		if cerr := tf.Close(); cerr != nil {
			log.Printf("%s: %v", path, cerr)
		}
	}
	if err != nil {
		return err
	}
	if result == nil {
		// Blank tape: nothing to write, nothing wrong.
		log.Printf("%s: no records on any track", path)
		return nil
	}

	log.Printf("%s: track %d, %d records", path, result.Track, len(result.Records))
	for _, rec := range result.Records {
		fmt.Printf("RECORD %s\n", rec.Summary())
	}
	if hdr, ok := record.ParseHeader(result.Records[0]); ok && len(hdr.BadSlot) > 0 {
		log.Printf("%s: file list cut short at slot [%s]", path, hex.EncodeToString(hdr.BadSlot))
	}

	tapPath := path + ".TAP"
	if err := writeTAP(tapPath, result.Records); err != nil {
		return err
	}
	if err := writeMeta(tapPath+".meta", filepath.Base(tapPath), result.Records); err != nil {
		return err
	}
	return nil
}

func writeTAP(path string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tap.Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMeta(path, filename string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tap.WriteMeta(f, filename, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// traceFile streams edge diagnostics to disk, one event per line.
type traceFile struct {
	f *os.File
}

func newTraceFile(path string) (*traceFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &traceFile{f: f}, nil
}

func (t *traceFile) Trace(ev decode.TraceEvent) {
	fmt.Fprintln(t.f, ev)
}

func (t *traceFile) Close() error {
	return t.f.Close()
}
