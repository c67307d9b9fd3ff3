package line

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/megacare-dev/mega-care-api/config"
	"golang.org/x/oauth2"
)

const (
	TokenUrl   = "https://api.line.me/oauth2/v2.1/token"
	VerifyUrl  = "https://api.line.me/oauth2/v2.1/verify"
	ProfileUrl = "https://api.line.me/v2/profile"

	// Issuer is the iss claim LINE puts in its ID tokens.
	Issuer = "https://access.line.me"
)

var (
	ErrExchangeFailed = fmt.Errorf("authorization code exchange failed")
	ErrInvalidToken   = fmt.Errorf("line token is invalid")
)

type Tokens struct {
	AccessToken string
	IDToken     string
}

type Verification struct {
	ClientId  string `json:"client_id"`
	ExpiresIn int64  `json:"expires_in"`
	Scope     string `json:"scope"`
}

type Profile struct {
	UserId        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureUrl    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./client.go -destination=./test/mock_client.go -package test MockClient

type Client interface {
	// ExchangeCode trades a LINE Login authorization code for tokens.
	ExchangeCode(ctx context.Context, code string, redirectUri string) (*Tokens, error)

	// VerifyAccessToken calls the LINE verify endpoint. The caller must
	// still check the returned client id against the expected channel.
	VerifyAccessToken(ctx context.Context, accessToken string) (*Verification, error)

	GetProfile(ctx context.Context, accessToken string) (*Profile, error)
}

func NewClient(cfg *config.Config) Client {
	oauth := &oauth2.Config{
		ClientID:     cfg.LineChannelId,
		ClientSecret: cfg.LineChannelSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  TokenUrl,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	return &client{
		oauth: oauth,
		http:  resty.New().SetTimeout(10 * time.Second),
	}
}

type client struct {
	oauth *oauth2.Config
	http  *resty.Client
}

var _ Client = &client{}

func (c *client) ExchangeCode(ctx context.Context, code string, redirectUri string) (*Tokens, error) {
	token, err := c.oauth.Exchange(ctx, code, oauth2.SetAuthURLParam("redirect_uri", redirectUri))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return nil, fmt.Errorf("%w: id_token not present in response", ErrExchangeFailed)
	}

	return &Tokens{
		AccessToken: token.AccessToken,
		IDToken:     idToken,
	}, nil
}

func (c *client) VerifyAccessToken(ctx context.Context, accessToken string) (*Verification, error) {
	verification := &Verification{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", accessToken).
		SetResult(verification).
		Get(VerifyUrl)
	if err != nil {
		return nil, fmt.Errorf("error calling line verify endpoint: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: verify endpoint returned %s", ErrInvalidToken, resp.Status())
	}
	if verification.ExpiresIn <= 0 {
		return nil, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	return verification, nil
}

func (c *client) GetProfile(ctx context.Context, accessToken string) (*Profile, error) {
	profile := &Profile{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(profile).
		Get(ProfileUrl)
	if err != nil {
		return nil, fmt.Errorf("error calling line profile endpoint: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: profile endpoint returned %s", ErrInvalidToken, resp.Status())
	}
	return profile, nil
}
