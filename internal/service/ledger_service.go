package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

const (
	// LedgerServiceName is the fully-qualified name of the ledger service.
	LedgerServiceName = "splitledger.v1.LedgerService"

	AddGroupProcedure           = "/" + LedgerServiceName + "/AddGroup"
	GetGroupProcedure           = "/" + LedgerServiceName + "/GetGroup"
	ListGroupsProcedure         = "/" + LedgerServiceName + "/ListGroups"
	AddUserProcedure            = "/" + LedgerServiceName + "/AddUser"
	RemoveUserProcedure         = "/" + LedgerServiceName + "/RemoveUser"
	ListUsersProcedure          = "/" + LedgerServiceName + "/ListUsers"
	UserBalanceProcedure        = "/" + LedgerServiceName + "/UserBalance"
	LeastPaidProcedure          = "/" + LedgerServiceName + "/LeastPaid"
	PostTransactionProcedure    = "/" + LedgerServiceName + "/PostTransaction"
	RecentTransactionsProcedure = "/" + LedgerServiceName + "/RecentTransactions"
	SuggestSettlementsProcedure = "/" + LedgerServiceName + "/SuggestSettlements"
)

// DefaultRecentLimit is used when a RecentTransactions request has no limit.
const DefaultRecentLimit = 10

// IsMutation reports whether a procedure changes ledger state.
func IsMutation(procedure string) bool {
	switch procedure {
	case AddGroupProcedure, AddUserProcedure, RemoveUserProcedure, PostTransactionProcedure:
		return true
	}
	return false
}

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	store       storage.Store
	recentLimit int
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store, recentLimit: DefaultRecentLimit}
}

// WithRecentLimit overrides the default RecentTransactions page size.
func (s *LedgerService) WithRecentLimit(n int) *LedgerService {
	if n > 0 {
		s.recentLimit = n
	}
	return s
}

// NewLedgerServiceHandler builds an HTTP handler for every LedgerService
// procedure. It returns the path to mount it on.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(AddGroupProcedure, connect.NewUnaryHandler(AddGroupProcedure, svc.AddGroup, opts...))
	mux.Handle(GetGroupProcedure, connect.NewUnaryHandler(GetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(ListGroupsProcedure, connect.NewUnaryHandler(ListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(AddUserProcedure, connect.NewUnaryHandler(AddUserProcedure, svc.AddUser, opts...))
	mux.Handle(RemoveUserProcedure, connect.NewUnaryHandler(RemoveUserProcedure, svc.RemoveUser, opts...))
	mux.Handle(ListUsersProcedure, connect.NewUnaryHandler(ListUsersProcedure, svc.ListUsers, opts...))
	mux.Handle(UserBalanceProcedure, connect.NewUnaryHandler(UserBalanceProcedure, svc.UserBalance, opts...))
	mux.Handle(LeastPaidProcedure, connect.NewUnaryHandler(LeastPaidProcedure, svc.LeastPaid, opts...))
	mux.Handle(PostTransactionProcedure, connect.NewUnaryHandler(PostTransactionProcedure, svc.PostTransaction, opts...))
	mux.Handle(RecentTransactionsProcedure, connect.NewUnaryHandler(RecentTransactionsProcedure, svc.RecentTransactions, opts...))
	mux.Handle(SuggestSettlementsProcedure, connect.NewUnaryHandler(SuggestSettlementsProcedure, svc.SuggestSettlements, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// toConnectError maps ledger sentinels onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ledger.ErrDuplicateGroup), errors.Is(err, ledger.ErrDuplicateUser):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, ledger.ErrNoSuchGroup), errors.Is(err, ledger.ErrNoSuchUser):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrEmptyRegistry):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireNames rejects empty identifiers before the store is touched.
func requireNames(fields ...string) error {
	for i := 0; i < len(fields); i += 2 {
		if fields[i+1] == "" {
			return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s required", fields[i]))
		}
	}
	return nil
}

// requestLogger tags the default logger with the request ID stamped by the
// logging interceptor.
func requestLogger(ctx context.Context) *slog.Logger {
	return slog.With("request_id", middleware.GetRequestID(ctx))
}

func toBalance(m models.Member) Balance {
	return Balance{Name: m.Name, Balance: m.Balance, Formatted: ledger.FormatAmount(m.Balance)}
}

// AddGroup creates a new, empty group.
func (s *LedgerService) AddGroup(ctx context.Context, req *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error) {
	logger := requestLogger(ctx)
	logger.Info("AddGroup request received", "group", req.Msg.Name, "operator", middleware.GetOperator(ctx))

	if err := requireNames("name", req.Msg.Name); err != nil {
		return nil, err
	}
	if err := s.store.AddGroup(ctx, req.Msg.Name); err != nil {
		logger.Error("AddGroup failed", "group", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("Group created", "group", req.Msg.Name)

	return connect.NewResponse(&AddGroupResponse{
		Group: models.Group{Name: req.Msg.Name},
	}), nil
}

// GetGroup returns a group's members and the size of its log.
func (s *LedgerService) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	logger := requestLogger(ctx)
	logger.Info("GetGroup request received", "group", req.Msg.Name)

	if err := requireNames("name", req.Msg.Name); err != nil {
		return nil, err
	}
	group, err := s.store.GetGroup(ctx, req.Msg.Name)
	if err != nil {
		logger.Error("GetGroup failed", "group", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("GetGroup successful", "group", group.Name, "members", len(group.Members))

	return connect.NewResponse(&GetGroupResponse{Group: *group}), nil
}

// ListGroups returns every group name in creation order.
func (s *LedgerService) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	logger := requestLogger(ctx)
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		logger.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&ListGroupsResponse{Groups: groups}), nil
}

// AddUser adds a zero-balance member to a group.
func (s *LedgerService) AddUser(ctx context.Context, req *connect.Request[AddUserRequest]) (*connect.Response[AddUserResponse], error) {
	logger := requestLogger(ctx)
	logger.Info("AddUser request received", "group", req.Msg.Group, "user", req.Msg.User, "operator", middleware.GetOperator(ctx))

	if err := requireNames("group", req.Msg.Group, "user", req.Msg.User); err != nil {
		return nil, err
	}
	if err := s.store.AddUser(ctx, req.Msg.Group, req.Msg.User); err != nil {
		logger.Error("AddUser failed", "group", req.Msg.Group, "user", req.Msg.User, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddUserResponse{
		Member: toBalance(models.Member{Name: req.Msg.User}),
	}), nil
}

// RemoveUser removes a member and purges its transactions.
func (s *LedgerService) RemoveUser(ctx context.Context, req *connect.Request[RemoveUserRequest]) (*connect.Response[RemoveUserResponse], error) {
	logger := requestLogger(ctx)
	logger.Info("RemoveUser request received", "group", req.Msg.Group, "user", req.Msg.User, "operator", middleware.GetOperator(ctx))

	if err := requireNames("group", req.Msg.Group, "user", req.Msg.User); err != nil {
		return nil, err
	}
	if err := s.store.RemoveUser(ctx, req.Msg.Group, req.Msg.User); err != nil {
		logger.Error("RemoveUser failed", "group", req.Msg.Group, "user", req.Msg.User, "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("User removed", "group", req.Msg.Group, "user", req.Msg.User)

	return connect.NewResponse(&RemoveUserResponse{}), nil
}

// ListUsers returns a group's members, lowest balance first.
func (s *LedgerService) ListUsers(ctx context.Context, req *connect.Request[ListUsersRequest]) (*connect.Response[ListUsersResponse], error) {
	logger := requestLogger(ctx)
	if err := requireNames("group", req.Msg.Group); err != nil {
		return nil, err
	}
	members, err := s.store.ListUsers(ctx, req.Msg.Group)
	if err != nil {
		logger.Error("ListUsers failed", "group", req.Msg.Group, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]Balance, len(members))
	for i, m := range members {
		out[i] = toBalance(m)
	}
	return connect.NewResponse(&ListUsersResponse{Members: out}), nil
}

// UserBalance returns one member's balance.
func (s *LedgerService) UserBalance(ctx context.Context, req *connect.Request[UserBalanceRequest]) (*connect.Response[UserBalanceResponse], error) {
	logger := requestLogger(ctx)
	if err := requireNames("group", req.Msg.Group, "user", req.Msg.User); err != nil {
		return nil, err
	}
	balance, err := s.store.UserBalance(ctx, req.Msg.Group, req.Msg.User)
	if err != nil {
		logger.Error("UserBalance failed", "group", req.Msg.Group, "user", req.Msg.User, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&UserBalanceResponse{
		Member: toBalance(models.Member{Name: req.Msg.User, Balance: balance}),
	}), nil
}

// LeastPaid returns every member tied at the lowest balance.
func (s *LedgerService) LeastPaid(ctx context.Context, req *connect.Request[LeastPaidRequest]) (*connect.Response[LeastPaidResponse], error) {
	logger := requestLogger(ctx)
	if err := requireNames("group", req.Msg.Group); err != nil {
		return nil, err
	}
	users, err := s.store.LeastPaid(ctx, req.Msg.Group)
	if err != nil {
		logger.Error("LeastPaid failed", "group", req.Msg.Group, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&LeastPaidResponse{Users: users}), nil
}

// PostTransaction records a contribution and returns the member's new balance.
func (s *LedgerService) PostTransaction(ctx context.Context, req *connect.Request[PostTransactionRequest]) (*connect.Response[PostTransactionResponse], error) {
	logger := requestLogger(ctx)
	logger.Info("PostTransaction request received",
		"group", req.Msg.Group,
		"user", req.Msg.User,
		"amount", req.Msg.Amount,
		"operator", middleware.GetOperator(ctx),
	)

	if err := requireNames("group", req.Msg.Group, "user", req.Msg.User); err != nil {
		return nil, err
	}
	if math.IsNaN(req.Msg.Amount) || math.IsInf(req.Msg.Amount, 0) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be a finite number"))
	}

	xct, balance, err := s.store.PostTransaction(ctx, req.Msg.Group, req.Msg.User, req.Msg.Amount)
	if err != nil {
		logger.Error("PostTransaction failed", "group", req.Msg.Group, "user", req.Msg.User, "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("Transaction posted", "group", req.Msg.Group, "transaction_id", xct.ID)

	return connect.NewResponse(&PostTransactionResponse{
		Transaction: *xct,
		Member:      toBalance(models.Member{Name: req.Msg.User, Balance: balance}),
	}), nil
}

// RecentTransactions returns the newest records of a group.
func (s *LedgerService) RecentTransactions(ctx context.Context, req *connect.Request[RecentTransactionsRequest]) (*connect.Response[RecentTransactionsResponse], error) {
	logger := requestLogger(ctx)
	if err := requireNames("group", req.Msg.Group); err != nil {
		return nil, err
	}
	limit := req.Msg.Limit
	if limit <= 0 {
		limit = s.recentLimit
	}

	xcts, err := s.store.RecentTransactions(ctx, req.Msg.Group, limit)
	if err != nil {
		logger.Error("RecentTransactions failed", "group", req.Msg.Group, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&RecentTransactionsResponse{Transactions: xcts}), nil
}

// SuggestSettlements proposes payments that even out a group's contributions.
func (s *LedgerService) SuggestSettlements(ctx context.Context, req *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error) {
	logger := requestLogger(ctx)
	if err := requireNames("group", req.Msg.Group); err != nil {
		return nil, err
	}
	settlements, err := s.store.Settlements(ctx, req.Msg.Group)
	if err != nil {
		logger.Error("SuggestSettlements failed", "group", req.Msg.Group, "error", err)
		return nil, toConnectError(err)
	}

	logger.Info("SuggestSettlements successful", "group", req.Msg.Group, "count", len(settlements))

	return connect.NewResponse(&SuggestSettlementsResponse{Settlements: settlements}), nil
}
