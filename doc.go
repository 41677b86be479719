/*
Package campaign-sheets ingests call-center campaign-performance exports and writes
aggregated per-campaign metrics into the day's columns of a Google Sheets worksheet,
matching report rows to worksheet rows by campaign name with a fallback alias lookup
against the settings worksheet.

campaign-sheets can be used from the command line or run as a small web app for
operators who prefer to upload report files from a browser.

campaign-sheets supports the following commands:

  - update, to aggregate one or more report files and update the campaign worksheet
  - serve, to run the report upload web UI
  - version, to display the current version
*/
package sheets
