package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"transaction-merger/internal/domain"
)

// MergeUseCase reads transactions from an ordered list of sources and
// aggregates them.
type MergeUseCase struct {
	opener SourceOpener
	sink   DiagnosticSink
}

// NewMergeUseCase creates a new instance of the usecase.
func NewMergeUseCase(opener SourceOpener, sink DiagnosticSink) *MergeUseCase {
	return &MergeUseCase{opener: opener, sink: sink}
}

// Merge imports every source in order and summarizes the result.
// Failures of single sources or lines are reported to the sink and never abort the run.
func (uc *MergeUseCase) Merge(ctx context.Context, runID string, sources []string) *domain.MergeReport {
	result := uc.Import(ctx, sources)
	summary := Summarize(result.Transactions)

	return &domain.MergeReport{
		RunID:        runID,
		Summary:      summary,
		Sources:      result.Sources,
		Transactions: result.Transactions,
	}
}

// Import reads all sources in the given order and accumulates every line
// that parses into a Transaction.
func (uc *MergeUseCase) Import(ctx context.Context, sources []string) *domain.ImportResult {
	result := &domain.ImportResult{
		Transactions: make([]domain.Transaction, 0),
		Sources:      make([]domain.SourceOutcome, 0, len(sources)),
	}

	for _, source := range sources {
		outcome := uc.importSource(ctx, source, &result.Transactions)
		result.Sources = append(result.Sources, outcome)
	}
	return result
}

func (uc *MergeUseCase) importSource(ctx context.Context, source string, transactions *[]domain.Transaction) (outcome domain.SourceOutcome) {
	outcome = domain.SourceOutcome{Source: source, Status: domain.SourceImported}

	reader, err := uc.opener.Open(ctx, source)
	if err != nil {
		if errors.Is(err, domain.ErrSourceMissing) {
			uc.sink.Warn(fmt.Sprintf("source %s does not exist - skipped", source))
			outcome.Status = domain.SourceMissing
			return outcome
		}
		uc.sink.Error(fmt.Sprintf("cannot read source %s", source), err)
		outcome.Status = domain.SourceReadFailed
		return outcome
	}
	uc.sink.Info(fmt.Sprintf("source opened for import: %s", source))

	defer func() {
		if err := reader.Close(); err != nil {
			uc.sink.Error(fmt.Sprintf("cannot close source %s", source), fmt.Errorf("%w: %v", domain.ErrSourceClose, err))
			outcome.CloseError = err.Error()
		}
	}()

	lines := bufio.NewReader(reader)
	for {
		line, err := lines.ReadString('\n')
		if err != nil && err != io.EOF {
			uc.sink.Error(fmt.Sprintf("cannot read source %s", source), fmt.Errorf("%w: %v", domain.ErrSourceRead, err))
			outcome.Status = domain.SourceReadFailed
			return outcome
		}
		// the last line may lack a newline; a trailing newline ends input with ""
		if line != "" {
			uc.importLine(source, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), transactions, &outcome)
		}
		if err == io.EOF {
			return outcome
		}
	}
}

func (uc *MergeUseCase) importLine(source, line string, transactions *[]domain.Transaction, outcome *domain.SourceOutcome) {
	tx, err := domain.ParseTransaction(line)
	if err != nil {
		uc.reportParseError(source, line, err)
		outcome.Skipped++
		return
	}

	*transactions = append(*transactions, tx)
	outcome.Imported++
	uc.sink.Debug(fmt.Sprintf("imported transaction %s", tx))
}

func (uc *MergeUseCase) reportParseError(source, line string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		uc.sink.Error(fmt.Sprintf("cannot parse amount from line: %s (source %s)", line, source), err)
	case errors.Is(err, domain.ErrInvalidDate):
		uc.sink.Error(fmt.Sprintf("cannot parse date from line: %s (source %s)", line, source), err)
	default:
		uc.sink.Error(fmt.Sprintf("cannot parse line, expected 3 fields: %s (source %s)", line, source), err)
	}
}

// Summarize computes count, total and max over the transactions.
// The running max starts at 0.0, so an empty or all-negative collection
// has a max of 0.0.
func Summarize(transactions []domain.Transaction) domain.Summary {
	summary := domain.Summary{Count: len(transactions)}
	for _, tx := range transactions {
		summary.Total += tx.Amount
		summary.Max = math.Max(summary.Max, tx.Amount)
	}
	return summary
}
