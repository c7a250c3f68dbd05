// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

//go:generate go run go.uber.org/mock/mockgen -package mock -destination internal/mock/storage.go authelia.com/provider/authz Storage
//go:generate go run go.uber.org/mock/mockgen -package mock -destination internal/mock/response_creator.go authelia.com/provider/authz ResponseCreator,AccessTokenCreator,IDTokenCreator,VPTokenCreator
//go:generate go run go.uber.org/mock/mockgen -package mock -destination internal/mock/event_publisher.go authelia.com/provider/authz EventPublisher
//go:generate go run go.uber.org/mock/mockgen -package mock -destination internal/mock/issuer.go authelia.com/provider/authz/token/jwt Issuer
