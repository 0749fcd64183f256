package service

import (
	"context"

	"connectrpc.com/connect"
)

// LedgerClient is a typed client for the LedgerService.
type LedgerClient struct {
	addGroup           *connect.Client[AddGroupRequest, AddGroupResponse]
	getGroup           *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups         *connect.Client[ListGroupsRequest, ListGroupsResponse]
	addUser            *connect.Client[AddUserRequest, AddUserResponse]
	removeUser         *connect.Client[RemoveUserRequest, RemoveUserResponse]
	listUsers          *connect.Client[ListUsersRequest, ListUsersResponse]
	userBalance        *connect.Client[UserBalanceRequest, UserBalanceResponse]
	leastPaid          *connect.Client[LeastPaidRequest, LeastPaidResponse]
	postTransaction    *connect.Client[PostTransactionRequest, PostTransactionResponse]
	recentTransactions *connect.Client[RecentTransactionsRequest, RecentTransactionsResponse]
	suggestSettlements *connect.Client[SuggestSettlementsRequest, SuggestSettlementsResponse]
}

// NewLedgerClient constructs a client for the LedgerService at baseURL.
func NewLedgerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &LedgerClient{
		addGroup:           connect.NewClient[AddGroupRequest, AddGroupResponse](httpClient, baseURL+AddGroupProcedure, opts...),
		getGroup:           connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+GetGroupProcedure, opts...),
		listGroups:         connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+ListGroupsProcedure, opts...),
		addUser:            connect.NewClient[AddUserRequest, AddUserResponse](httpClient, baseURL+AddUserProcedure, opts...),
		removeUser:         connect.NewClient[RemoveUserRequest, RemoveUserResponse](httpClient, baseURL+RemoveUserProcedure, opts...),
		listUsers:          connect.NewClient[ListUsersRequest, ListUsersResponse](httpClient, baseURL+ListUsersProcedure, opts...),
		userBalance:        connect.NewClient[UserBalanceRequest, UserBalanceResponse](httpClient, baseURL+UserBalanceProcedure, opts...),
		leastPaid:          connect.NewClient[LeastPaidRequest, LeastPaidResponse](httpClient, baseURL+LeastPaidProcedure, opts...),
		postTransaction:    connect.NewClient[PostTransactionRequest, PostTransactionResponse](httpClient, baseURL+PostTransactionProcedure, opts...),
		recentTransactions: connect.NewClient[RecentTransactionsRequest, RecentTransactionsResponse](httpClient, baseURL+RecentTransactionsProcedure, opts...),
		suggestSettlements: connect.NewClient[SuggestSettlementsRequest, SuggestSettlementsResponse](httpClient, baseURL+SuggestSettlementsProcedure, opts...),
	}
}

func (c *LedgerClient) AddGroup(ctx context.Context, req *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error) {
	return c.addGroup.CallUnary(ctx, req)
}

func (c *LedgerClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *LedgerClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *LedgerClient) AddUser(ctx context.Context, req *connect.Request[AddUserRequest]) (*connect.Response[AddUserResponse], error) {
	return c.addUser.CallUnary(ctx, req)
}

func (c *LedgerClient) RemoveUser(ctx context.Context, req *connect.Request[RemoveUserRequest]) (*connect.Response[RemoveUserResponse], error) {
	return c.removeUser.CallUnary(ctx, req)
}

func (c *LedgerClient) ListUsers(ctx context.Context, req *connect.Request[ListUsersRequest]) (*connect.Response[ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *LedgerClient) UserBalance(ctx context.Context, req *connect.Request[UserBalanceRequest]) (*connect.Response[UserBalanceResponse], error) {
	return c.userBalance.CallUnary(ctx, req)
}

func (c *LedgerClient) LeastPaid(ctx context.Context, req *connect.Request[LeastPaidRequest]) (*connect.Response[LeastPaidResponse], error) {
	return c.leastPaid.CallUnary(ctx, req)
}

func (c *LedgerClient) PostTransaction(ctx context.Context, req *connect.Request[PostTransactionRequest]) (*connect.Response[PostTransactionResponse], error) {
	return c.postTransaction.CallUnary(ctx, req)
}

func (c *LedgerClient) RecentTransactions(ctx context.Context, req *connect.Request[RecentTransactionsRequest]) (*connect.Response[RecentTransactionsResponse], error) {
	return c.recentTransactions.CallUnary(ctx, req)
}

func (c *LedgerClient) SuggestSettlements(ctx context.Context, req *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error) {
	return c.suggestSettlements.CallUnary(ctx, req)
}

// AuthClient is a typed client for the AuthService.
type AuthClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthClient constructs a client for the AuthService at baseURL.
func NewAuthClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &AuthClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+LoginProcedure, opts...),
	}
}

func (c *AuthClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
