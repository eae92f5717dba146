// Package difficulty реализует ядро оценки сложности панорамы: нормализацию
// ответов геосервисов в LocationFeatures, эвристический скоринг и ансамбль
// с оценкой vision-модели.
//
// Все функции пакета чистые и синхронные: никаких сетевых вызовов, ошибок,
// таймаутов и общего изменяемого состояния. Сбои внешних сервисов должны быть
// сведены к "значение / отсутствие" до вызова ядра.
package difficulty
