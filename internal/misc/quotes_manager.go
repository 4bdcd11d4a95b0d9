package misc

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrNoQuotes = errors.New("no quotes loaded")

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Topic  string `json:"topic"`
}

// QuotesManager serves motivational training quotes.
type QuotesManager struct {
	quotes      []Quote
	topicQuotes map[string][]Quote
	intn        func(n int) int
}

// NewQuotesManager reads quotes from a ';' separated CSV: QUOTE;AUTHOR;TOPIC
func NewQuotesManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{
		topicQuotes: make(map[string][]Quote),
		intn:        rand.IntN,
	}

	quotesCsvReader.Comma = ';'
	quotesCsvReader.FieldsPerRecord = 3
	for {
		record, err := quotesCsvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read quotes csv: %w", err)
		}

		quote := Quote{
			Text:   strings.TrimSpace(record[0]),
			Author: strings.TrimSpace(record[1]),
			Topic:  strings.ToLower(strings.TrimSpace(record[2])),
		}
		if quote.Text == "" {
			continue
		}
		qm.quotes = append(qm.quotes, quote)
		qm.topicQuotes[quote.Topic] = append(qm.topicQuotes[quote.Topic], quote)
	}

	log.Debugf("quotes CSV read %d quotes", len(qm.quotes))
	return qm, nil
}

func (qm *QuotesManager) Count() int {
	return len(qm.quotes)
}

// RandomQuote returns a random quote, from the given topic if not empty.
func (qm *QuotesManager) RandomQuote(topic string) (Quote, error) {
	quotes := qm.quotes
	if topic != "" {
		quotes = qm.topicQuotes[strings.ToLower(topic)]
	}
	if len(quotes) == 0 {
		return Quote{}, ErrNoQuotes
	}
	return quotes[qm.intn(len(quotes))], nil
}
