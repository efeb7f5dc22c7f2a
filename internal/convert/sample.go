// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// SampleXML is the demonstration response document used by the sample
// command: two matches scoring 35 and 50 and a Values block with two entries.
const SampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<Response>
<ResultBlock>
<ErrorWarnings>
<Errors errorCount="0" />
<Warnings warningCount="1">
<Warning>
<Number>102001</Number>
<Message>Minor mismatch in address</Message>
<Values>
<Value>Bellandur</Value>
<Value>Bangalore</Value>
</Values>
</Warning>
</Warnings>
</ErrorWarnings>
<MatchDetails>
<Match>
<Entity>John</Entity>
<MatchType>Exact</MatchType>
<Score>35</Score>
</Match>
<Match>
<Entity>Doe</Entity>
<MatchType>Exact</MatchType>
<Score>50</Score>
</Match>
</MatchDetails>
<API>
<RetStatus>SUCCESS</RetStatus>
<ErrorMessage />
<SysErrorCode />
<SysErrorMessage />
</API>
</ResultBlock>
</Response>`
