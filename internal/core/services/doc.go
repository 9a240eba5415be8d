// Package services implements the driving ports: answer extraction,
// document loading, voice orchestration, evaluation, and history.
package services
