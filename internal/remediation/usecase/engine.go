package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	alertRepo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
	"webhook-ops/internal/remediation"
)

// plannedAction is one step of a remediation plan before execution.
type plannedAction struct {
	actionType  string
	description string
	run         func(ctx context.Context) error
}

// HandleAlert loads the alert, builds its remediation plan, executes
// every action independently and records the results.
func (uc *implUseCase) HandleAlert(ctx context.Context, alertID string) (remediation.HandleAlertOutput, error) {
	a, err := uc.alerts.GetOneAlert(ctx, alertRepo.GetOneAlertOptions{ID: alertID})
	if err != nil {
		if errors.Is(err, alertRepo.ErrCorruptRecord) {
			return remediation.HandleAlertOutput{}, remediation.ErrCorruptAlert
		}
		uc.l.Errorf(ctx, "uc.HandleAlert GetOneAlert: %v", err)
		return remediation.HandleAlertOutput{}, err
	}
	if a.ID == "" {
		return remediation.HandleAlertOutput{}, remediation.ErrAlertNotFound
	}

	plan := uc.builtinPlan(a)
	rbPlan, err := uc.runbookPlan(ctx, a)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleAlert runbookPlan: %v", err)
		return remediation.HandleAlertOutput{}, err
	}
	plan = append(plan, rbPlan...)

	actions := make([]model.RemediationAction, 0, len(plan))
	for _, p := range plan {
		actions = append(actions, uc.execute(ctx, a.ID, p))
	}

	summary := remediation.Summarize(actions)
	summaryText := fmt.Sprintf("%d actions: %d succeeded, %d failed",
		summary.Total, summary.Successful, summary.Failed)

	if len(actions) > 0 {
		if err := uc.alerts.AppendActions(ctx, a.ID, actions); err != nil {
			uc.l.Errorf(ctx, "uc.HandleAlert AppendActions: %v", err)
			return remediation.HandleAlertOutput{}, err
		}
	}
	if err := uc.alerts.MarkAutoProcessed(ctx, a.ID, summaryText, uc.now()); err != nil {
		uc.l.Errorf(ctx, "uc.HandleAlert MarkAutoProcessed: %v", err)
		return remediation.HandleAlertOutput{}, err
	}

	return remediation.HandleAlertOutput{
		Alert:   a,
		Actions: actions,
		Summary: summary,
	}, nil
}

// execute runs one planned action with its own timeout. A panic or
// error inside the action is captured into the result; neither stops
// the remaining actions.
func (uc *implUseCase) execute(ctx context.Context, alertID string, p plannedAction) model.RemediationAction {
	result := model.RemediationAction{
		ID:          uuid.New().String(),
		AlertID:     alertID,
		Type:        p.actionType,
		Description: p.description,
		ExecutedAt:  uc.now(),
	}

	actionCtx, cancel := context.WithTimeout(ctx, uc.actionTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("panic: %v", r)
			}
		}()
		done <- p.run(actionCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			result.Error = err.Error()
			return result
		}
		result.Success = true
	case <-actionCtx.Done():
		result.Error = "timeout"
	}
	return result
}

// builtinPlan maps an alert category to its built-in remediation
// actions. Built-ins take priority over runbooks.
func (uc *implUseCase) builtinPlan(a model.Alert) []plannedAction {
	notify := func(text string) plannedAction {
		return plannedAction{
			actionType:  "notify_slack",
			description: "Notify the on-call channel",
			run: func(ctx context.Context) error {
				return uc.notifier.Send(ctx, text)
			},
		}
	}
	note := func(actionType, description string) plannedAction {
		return plannedAction{
			actionType:  actionType,
			description: description,
			run:         func(ctx context.Context) error { return nil },
		}
	}

	switch a.Category {
	case model.AlertCategoryWebhook:
		return []plannedAction{
			note("replay_hint", fmt.Sprintf("Flagged failed delivery from %q for replay via the event feed", a.Source)),
			notify(fmt.Sprintf("[%s] %s: %s", a.Severity, a.Title, a.Message)),
		}
	case model.AlertCategoryPayment:
		return []plannedAction{
			notify(fmt.Sprintf("[%s] payment issue: %s", a.Severity, a.Title)),
			note("manual_review", "Flagged payment for manual review"),
		}
	case model.AlertCategorySecurity:
		return []plannedAction{
			note("lockdown_note", fmt.Sprintf("Recorded security incident for source %q", a.Source)),
			notify(fmt.Sprintf("[%s] security incident: %s", a.Severity, a.Title)),
		}
	case model.AlertCategorySystem:
		return []plannedAction{
			notify(fmt.Sprintf("[%s] system error: %s", a.Severity, a.Title)),
		}
	case model.AlertCategoryUser:
		return []plannedAction{
			notify(fmt.Sprintf("[info] %s: %s", a.Title, a.Message)),
		}
	}
	return nil
}

// runbookPlan builds one action per step of every active runbook for
// the alert's source. Runbook steps run after the built-in actions.
func (uc *implUseCase) runbookPlan(ctx context.Context, a model.Alert) ([]plannedAction, error) {
	if a.Source == "" {
		return nil, nil
	}

	runbooks, err := uc.runbooks.GetActiveBySource(ctx, a.Source)
	if err != nil {
		return nil, err
	}

	var plan []plannedAction
	for _, rb := range runbooks {
		for i, step := range rb.Steps {
			plan = append(plan, plannedAction{
				actionType:  "runbook_step",
				description: fmt.Sprintf("%s (step %d): %s", rb.Name, i+1, step),
				run:         func(ctx context.Context) error { return nil },
			})
		}
	}
	return plan, nil
}
