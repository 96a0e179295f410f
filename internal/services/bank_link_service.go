package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLinkSyncs bounds provider calls made by one SyncAll.
const maxConcurrentLinkSyncs = 4

const ownerClientUserID = "budget-coach-owner"

var ErrBankLinkNotFound = errors.New("bank link not found")

type bankLinkService struct {
	linkRepo repositories.BankLinkRepositoryInterface
	provider ProviderClientInterface
	syncer   TransactionSyncServiceInterface
	logger   SyncLoggerInterface
	metrics  MetricsRecorderInterface
	now      func() time.Time
}

func NewBankLinkService(
	linkRepo repositories.BankLinkRepositoryInterface,
	provider ProviderClientInterface,
	syncer TransactionSyncServiceInterface,
	logger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
) BankLinkServiceInterface {
	return &bankLinkService{
		linkRepo: linkRepo,
		provider: provider,
		syncer:   syncer,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *bankLinkService) CreateLinkToken(ctx context.Context) (*dto.LinkTokenResponse, error) {
	return s.provider.CreateLinkToken(ctx, ownerClientUserID)
}

// ExchangePublicToken completes a link. Linking the same institution item
// again returns the existing link.
func (s *bankLinkService) ExchangePublicToken(ctx context.Context, req dto.ExchangeTokenRequest) (*models.BankLink, error) {
	exchanged, err := s.provider.ExchangePublicToken(ctx, req.PublicToken)
	if err != nil {
		return nil, err
	}

	existing, err := s.linkRepo.GetByItemID(exchanged.ItemID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrBankLinkNotFound) {
		return nil, fmt.Errorf("failed to look up bank link: %w", err)
	}

	link := &models.BankLink{
		InstitutionName: strings.TrimSpace(req.InstitutionName),
		ItemID:          exchanged.ItemID,
		AccessToken:     exchanged.AccessToken,
	}
	if err := s.linkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to save bank link: %w", err)
	}

	slog.InfoContext(ctx, "bank link created", "link_id", link.ID, "institution", link.InstitutionName)
	return link, nil
}

func (s *bankLinkService) ListLinks() ([]models.BankLink, error) {
	return s.linkRepo.List()
}

// Disconnect revokes the item with the provider and forgets the link. Stored
// transactions are kept.
func (s *bankLinkService) Disconnect(ctx context.Context, id uuid.UUID) error {
	link, err := s.linkRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankLinkNotFound) {
			return ErrBankLinkNotFound
		}
		return err
	}

	if err := s.provider.RemoveItem(ctx, link.AccessToken); err != nil {
		slog.WarnContext(ctx, "provider item removal failed, deleting link anyway", "link_id", id, "error", err)
	}

	if err := s.linkRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bank link: %w", err)
	}
	return nil
}

// SyncAll pulls new transactions for every link concurrently. A link that
// fails contributes nothing and reports its error; the others still sync.
// A cancelled context skips links not yet started and returns the
// context error.
func (s *bankLinkService) SyncAll(ctx context.Context) (*dto.BankSyncResponse, error) {
	links, err := s.linkRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list bank links: %w", err)
	}

	start := time.Now()
	s.logger.LogSyncStarted(ctx, len(links))

	// syncLink records provider and storage failures in its result so one
	// bad link never stops the rest. Only caller cancellation ends the run.
	results := make([]dto.LinkSyncResult, len(links))
	var g errgroup.Group
	g.SetLimit(maxConcurrentLinkSyncs)
	for i := range links {
		link := links[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.syncLink(ctx, &link)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.WarnContext(ctx, "bank sync interrupted", "links", len(links), "error", err)
		return nil, fmt.Errorf("bank sync interrupted: %w", err)
	}

	response := &dto.BankSyncResponse{Links: results}
	failures := 0
	for _, r := range results {
		if r.Error != "" {
			failures++
			continue
		}
		response.Total.Accepted += r.Accepted
		response.Total.Skipped += r.Skipped
		response.Total.Duplicates += r.Duplicates
	}

	s.logger.LogSyncCompleted(ctx, response.Total, failures, time.Since(start))
	s.metrics.RecordProcessingTime("sync.all", time.Since(start))
	return response, nil
}

func (s *bankLinkService) syncLink(ctx context.Context, link *models.BankLink) dto.LinkSyncResult {
	result := dto.LinkSyncResult{
		LinkID:          link.ID.String(),
		InstitutionName: link.InstitutionName,
	}

	fail := func(err error) dto.LinkSyncResult {
		s.metrics.IncrementCounter("sync.link", map[string]string{"status": "failed"})
		s.logger.LogLinkFailed(ctx, link.ID, err)
		if stateErr := s.linkRepo.UpdateSyncState(link.ID, link.Cursor, s.now(), err.Error()); stateErr != nil {
			slog.ErrorContext(ctx, "failed to record sync failure", "link_id", link.ID, "error", stateErr)
		}
		result.Error = describeProviderError(err)
		return result
	}

	fetched, err := s.provider.FetchTransactions(ctx, link.AccessToken, link.Cursor)
	if err != nil {
		return fail(err)
	}

	synced, err := s.syncer.SyncTransactions(ctx, fetched.Transactions, OutflowPositive)
	if err != nil {
		return fail(err)
	}
	if _, err := s.syncer.RemoveTransactions(ctx, fetched.RemovedIDs); err != nil {
		return fail(err)
	}

	if err := s.linkRepo.UpdateSyncState(link.ID, fetched.NextCursor, s.now(), ""); err != nil {
		return fail(err)
	}

	result.SyncResult = *synced
	s.metrics.IncrementCounter("sync.link", map[string]string{"status": "success"})
	s.logger.LogLinkSynced(ctx, link.ID, *synced, fetched.Pages, fetched.Truncated)
	return result
}

func describeProviderError(err error) string {
	switch {
	case errors.Is(err, ErrBankLinkInvalid):
		return "bank connection needs to be re-linked"
	case errors.Is(err, ErrProviderRateLimited):
		return "bank data provider rate limit reached"
	case errors.Is(err, ErrProviderNotConfigured):
		return "bank data provider is not configured"
	case errors.Is(err, ErrProviderUnavailable):
		return "bank data provider unavailable"
	default:
		return err.Error()
	}
}
