package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	ScheduleInfo(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule handles POST /api/schedule, where the algorithm is named in the body and
// Round Robin must carry an explicit quantum.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return bodyError(ctx, err)
	}

	kind, err := schedulers.ParseKind(request.Algorithm)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Unsupported or missing algorithm. Supported algorithms: [%s]",
			strings.Join(schedulers.Names(), ", ")))
	}
	if kind == schedulers.RoundRobin && request.Quantum == nil {
		return badRequest(ctx, "Round Robin requires 'quantum' parameter.")
	}

	policy, err := schedulers.NewPolicy(request.Algorithm, request.QuantumOr(0))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.run(ctx, policy, &request)
}

func (s *SchedulerHandlerImpl) ScheduleInfo(ctx *fiber.Ctx) error {
	logrus.Infof("Received info request from %s", ctx.IP())
	return ctx.JSON(responses.InfoResponse{
		Message:          "POST JSON to this endpoint with algorithm, processes and (for RR) quantum.",
		SupportedMethods: []string{fiber.MethodPost},
	})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.runKind(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.runKind(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.runKind(ctx, schedulers.ShortestRemainingTimeFirst)
}

// RoundRobin falls back to the configured quantum when the body has none.
func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.runKind(ctx, schedulers.RoundRobin)
}

// AllAlgorithms runs every registered discipline on the same processes and returns the
// results keyed by algorithm name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return bodyError(ctx, err)
	}
	specs, err := s.processSpecs(&request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	all := make(map[string]responses.ScheduleResponse, len(schedulers.Kinds()))
	for _, kind := range schedulers.Kinds() {
		policy, err := schedulers.NewPolicy(kind.String(), request.QuantumOr(s.config.RoundRobinTimeQuantum))
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		result, err := schedulers.Run(policy, specs)
		if err != nil {
			return err
		}
		all[kind.String()] = responses.NewScheduleResponse(result)
	}
	logrus.Infof("all algorithms over %d processes", len(specs))
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) runKind(ctx *fiber.Ctx, kind schedulers.Kind) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return bodyError(ctx, err)
	}
	policy, err := schedulers.NewPolicy(kind.String(), request.QuantumOr(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.run(ctx, policy, &request)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, policy schedulers.Policy, request *requests.ScheduleRequest) error {
	specs, err := s.processSpecs(request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := schedulers.Run(policy, specs)
	if errors.Is(err, schedulers.ErrInvalidQuantum) {
		return badRequest(ctx, err.Error())
	}
	if err != nil {
		return err
	}

	logrus.Infof("%s over %d processes: awt=%.2f att=%.2f",
		policy, len(specs), result.Averages.AverageWaitingTime, result.Averages.AverageTurnAroundTime)
	return ctx.JSON(responses.NewScheduleResponse(result))
}

// processSpecs validates the request and enforces the simulated tick budget, since a
// run cannot be interrupted once started.
func (s *SchedulerHandlerImpl) processSpecs(request *requests.ScheduleRequest) ([]core.ProcessSpec, error) {
	specs, err := request.ProcessSpecs()
	if err != nil {
		return nil, err
	}
	if limit := s.config.MaxProcesses; limit > 0 && len(specs) > limit {
		return nil, fmt.Errorf("request has %d processes, limit is %d", len(specs), limit)
	}
	if limit := s.config.MaxSimulatedTicks; limit > 0 {
		if horizon := core.Horizon(specs); horizon > limit {
			return nil, fmt.Errorf("simulation spans up to %d ticks, limit is %d", horizon, limit)
		}
	}
	return specs, nil
}

// bodyError keeps the field-specific message for values that could not be coerced and
// reports anything else as malformed JSON.
func bodyError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, requests.ErrInvalidProcess) || errors.Is(err, requests.ErrQuantumFormat) {
		return badRequest(ctx, err.Error())
	}
	return badRequest(ctx, "Invalid JSON payload")
}

func badRequest(ctx *fiber.Ctx, message string) error {
	logrus.Debugf("rejecting %s %s: %s", ctx.Method(), ctx.Path(), message)
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
