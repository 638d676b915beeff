package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/hazuki-dict/hazuki/index"
	"github.com/hazuki-dict/hazuki/source"
)

// corpus is the decoded result of a single source file. Only the field
// matching what the file actually contained is populated; the others are nil.
type corpus struct {
	phrases  []source.PhraseEntry
	names    []source.NameEntry
	kanji    []source.Character
	radicals []source.RadicalDecomposition
}

// readSource decompresses r if it's gzip'd, sniffs which corpus format the
// decompressed bytes hold by looking for a recognized XML root element, and
// dispatches to the matching source package parser. radkfile is not XML — a
// file that doesn't sniff as one of the three known XML roots is assumed to
// be a radkfile stream, still decoded via ParseRadkfile's own EUC-JP decoder.
func readSource(r io.Reader, logger zerolog.Logger) (corpus, error) {
	data, err := decompress(r)
	if err != nil {
		return corpus{}, fmt.Errorf("decompress source: %w", err)
	}

	switch sniffRoot(data) {
	case "JMdict":
		phrases, err := source.ParseJMdict(bytes.NewReader(data))
		if err != nil {
			return corpus{}, fmt.Errorf("parse JMdict: %w", err)
		}
		return corpus{phrases: phrases}, nil
	case "JMnedict":
		names, err := source.ParseJMnedict(bytes.NewReader(data))
		if err != nil {
			return corpus{}, fmt.Errorf("parse JMnedict: %w", err)
		}
		return corpus{names: names}, nil
	case "kanjidic2":
		kanji, err := source.ParseKanjidic2(bytes.NewReader(data))
		if err != nil {
			return corpus{}, fmt.Errorf("parse kanjidic2: %w", err)
		}
		return corpus{kanji: kanji}, nil
	default:
		radicals, err := source.ParseRadkfile(bytes.NewReader(data), logger)
		if err != nil {
			return corpus{}, fmt.Errorf("parse radkfile: %w", err)
		}
		return corpus{radicals: radicals}, nil
	}
}

func decompress(r io.Reader) ([]byte, error) {
	buffered := bufio.NewReader(r)
	magic, err := buffered.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(buffered)
}

// sniffRoot scans the first portion of an XML document for a recognized root
// element name, without fully parsing it.
func sniffRoot(data []byte) string {
	head := data
	if len(head) > 4096 {
		head = head[:4096]
	}
	for _, root := range []string{"JMdict", "JMnedict", "kanjidic2"} {
		if bytes.Contains(head, []byte("<"+root)) {
			return root
		}
	}
	return ""
}

func merge(into *index.BuildInput, c corpus) {
	into.Phrases = append(into.Phrases, c.phrases...)
	into.Names = append(into.Names, c.names...)
	into.Kanji = append(into.Kanji, c.kanji...)
	into.Radicals = append(into.Radicals, c.radicals...)
}
