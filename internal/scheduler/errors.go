package scheduler

import "errors"

// Motor hataları sade sentinel değerlerdir; handler katmanı errors.Is ile
// HTTP durum koduna çevirir (400 / 409 / 404).
var (
	ErrInvalidInput = errors.New("geçersiz girdi")
	ErrInvalidState = errors.New("geçersiz durum geçişi")
	ErrNotFound     = errors.New("kayıt bulunamadı")
)
