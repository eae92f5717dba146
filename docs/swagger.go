// Package docs PanoProbe API.
//
// Сервис оценки сложности панорам Street View для игр в духе GeoGuessr.
// По координатам или ID панорамы собирает признаки локации и возвращает
// оценку сложности 1..5 с причинами.
//
// Основные возможности:
// - Эвристическая оценка по стране, урбанизации, качеству съёмки и ориентирам
// - Объединение с оценкой vision-модели (CLIP), если она доступна
// - Асинхронный анализ через Redis Streams
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
