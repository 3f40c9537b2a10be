// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives the terminal UI for the lifetime of the process and turns an
// interrupt into a clean shutdown.
package client
