// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"reflect"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/nbutton23/zxcvbn-go"
)

type vaultService struct {
	opener    store.VaultOpener
	generator crypto.SecretGenerator
	logger    *logger.Logger
}

// NewVaultService builds the default [VaultService] on top of a vault opener
// and a password generator.
func NewVaultService(opener store.VaultOpener, generator crypto.SecretGenerator, log *logger.Logger) VaultService {
	return &vaultService{
		opener:    opener,
		generator: generator,
		logger:    log,
	}
}

func (s *vaultService) VaultExists() (bool, error) {
	exists, err := s.opener.Exists()
	if err != nil {
		s.logger.Error().Err(err).Msg("checking vault file failed")
		return false, mapVaultError(err)
	}
	return exists, nil
}

func (s *vaultService) Unlock(masterPassword string) (store.UnlockedVault, models.SecretCollection, error) {
	vault, collection, err := s.opener.Open(masterPassword)
	if err != nil {
		mapped := mapVaultError(err)
		s.logger.Warn().Err(err).Stringer("kind", KindOf(mapped)).Msg("unlock failed")
		return nil, models.SecretCollection{}, mapped
	}

	return vault, collection, nil
}

func (s *vaultService) Persist(vault store.UnlockedVault, collection models.SecretCollection) error {
	if isNilVault(vault) {
		return mapVaultError(ErrVaultLocked)
	}

	if err := vault.Save(collection); err != nil {
		mapped := mapVaultError(err)
		s.logger.Error().Err(err).Stringer("kind", KindOf(mapped)).Int("entries", collection.Len()).Msg("persist failed")
		return mapped
	}

	return nil
}

// isNilVault also catches a nil pointer stored in a non-nil interface.
func isNilVault(vault store.UnlockedVault) bool {
	if vault == nil {
		return true
	}
	v := reflect.ValueOf(vault)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (s *vaultService) GeneratePassword(length int) (string, error) {
	password, err := s.generator.Generate(length)
	if err != nil {
		s.logger.Error().Err(err).Int("length", length).Msg("password generation failed")
		return "", mapVaultError(err)
	}
	return password, nil
}

func (s *vaultService) EstimateStrength(password string) models.PasswordStrength {
	if password == "" {
		return models.PasswordStrength{CrackTime: "instant"}
	}

	match := zxcvbn.PasswordStrength(password, nil)
	return models.PasswordStrength{
		Score:     match.Score,
		Entropy:   match.Entropy,
		CrackTime: match.CrackTimeDisplay,
	}
}
